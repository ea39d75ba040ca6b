package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestRegisteredDoc(t *testing.T) {
	doc, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var spec struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		BasePath    string                     `json:"basePath"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("doc is not JSON: %v\n%s", err, doc)
	}

	if spec.Swagger != "2.0" || spec.Info.Title != SwaggerInfo.Title || spec.BasePath != "/" {
		t.Errorf("header = %q %q %q", spec.Swagger, spec.Info.Title, spec.BasePath)
	}
	for _, p := range []string{"/api/health", "/api/options", "/api/recommend-name", "/api/name-card"} {
		if _, ok := spec.Paths[p]; !ok {
			t.Errorf("missing path %s", p)
		}
	}
	for _, d := range []string{"handler.MessageResponse", "handler.OptionsResponse", "models.NamingResult", "models.Option"} {
		if _, ok := spec.Definitions[d]; !ok {
			t.Errorf("missing definition %s", d)
		}
	}
}
