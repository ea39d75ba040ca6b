package models

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return v
}

// roundTrip feeds a normalized result back in as untyped JSON.
func roundTrip(t *testing.T, r NamingResult) any {
	t.Helper()
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return decode(t, string(b))
}

func TestNormalize_Total(t *testing.T) {
	inputs := []struct {
		name string
		raw  string
	}{
		{"null", `null`},
		{"number", `42`},
		{"string", `"hello"`},
		{"array", `[1, 2, {"primaryName": {"name": "X"}}]`},
		{"empty object", `{}`},
		{"wrong types", `{"primaryName": "Sarah", "alternatives": {"name": "x"}, "analysis": [1], "usageTips": "tip", "disclaimer": false}`},
		{"nested junk", `{"primaryName": {"name": {"deep": true}}, "alternatives": [null, 3, "x", []]}`},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(decode(t, tt.raw))
			if got.Alternatives == nil {
				t.Error("Alternatives is nil, want empty slice")
			}
			if got.UsageTips == nil {
				t.Error("UsageTips is nil, want empty slice")
			}

			b, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var shape map[string]any
			if err := json.Unmarshal(b, &shape); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			for _, key := range []string{"primaryName", "alternatives", "analysis", "usageTips", "disclaimer"} {
				if shape[key] == nil {
					t.Errorf("field %q missing or null in %s", key, b)
				}
			}
		})
	}
}

func TestNormalize_NonObjectIsDefault(t *testing.T) {
	for _, raw := range []any{nil, 3.0, "text", []any{}, true} {
		if got := Normalize(raw); !reflect.DeepEqual(got, DefaultResult()) {
			t.Errorf("Normalize(%v) = %+v, want default", raw, got)
		}
	}
}

func TestNormalize_FullResult(t *testing.T) {
	raw := decode(t, `{
		"primaryName": {"name": "Haneul", "hangulPronunciation": "하늘", "tagline": "맑은 이미지"},
		"alternatives": [
			{"name": "Hannah", "hangulPronunciation": "한나", "reason": "부르기 쉬움"},
			{"name": "Sky", "pronunciation": "스카이", "reason": "뜻이 통함"}
		],
		"analysis": {"sajuSummary": "a", "nameologySummary": "b", "practicalReason": "c"},
		"usageTips": ["tip one", "tip two"],
		"disclaimer": "참고용"
	}`)

	want := NamingResult{
		PrimaryName: PrimaryName{Name: "Haneul", Pronunciation: "하늘", Tagline: "맑은 이미지"},
		Alternatives: []Alternative{
			{Name: "Hannah", Pronunciation: "한나", Reason: "부르기 쉬움"},
			{Name: "Sky", Pronunciation: "스카이", Reason: "뜻이 통함"},
		},
		Analysis:   Analysis{SajuSummary: "a", NameologySummary: "b", PracticalReason: "c"},
		UsageTips:  []string{"tip one", "tip two"},
		Disclaimer: "참고용",
	}

	if got := Normalize(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %+v\nwant %+v", got, want)
	}
}

func TestNormalize_AlternativesFiltering(t *testing.T) {
	raw := decode(t, `{"alternatives": [
		{"name": "Amy"},
		{"name": ""},
		{"reason": "no name"},
		{"name": 0},
		{"name": null},
		"plain string",
		{"name": "Ben"},
		{"name": "Cleo", "reason": 7}
	]}`)

	got := Normalize(raw).Alternatives
	var names []string
	for _, a := range got {
		names = append(names, a.Name)
	}
	want := []string{"Amy", "Ben", "Cleo"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if got[2].Reason != "7" {
		t.Errorf("Cleo reason = %q, want %q", got[2].Reason, "7")
	}
}

func TestNormalize_UsageTips(t *testing.T) {
	raw := decode(t, `{"usageTips": ["a", "", null, 0, false, 12, true, ["x", "y"], {"k": 1}]}`)
	got := Normalize(raw).UsageTips
	want := []string{"a", "12", "true", "x,y", "[object Object]"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UsageTips = %q, want %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`null`,
		`{"primaryName": {"name": 5, "tagline": true}, "alternatives": [{"name": "A", "pronunciation": "에이"}, {}], "usageTips": [1, "", "b"], "disclaimer": 0}`,
		`{"primaryName": {"name": "Sarah", "hangulPronunciation": "사라"}, "analysis": {"sajuSummary": ["x", null, "z"]}}`,
	}
	for _, s := range inputs {
		once := Normalize(decode(t, s))
		twice := Normalize(roundTrip(t, once))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("not idempotent for %s:\nonce  %+v\ntwice %+v", s, once, twice)
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{false, ""},
		{0.0, ""},
		{"", ""},
		{true, "true"},
		{1.5, "1.5"},
		{100.0, "100"},
		{json.Number("0"), ""},
		{json.Number("12"), "12"},
		{json.Number("1e21"), "1e+21"},
		{1e21, "1e+21"},
		{-2.5e22, "-2.5e+22"},
		{1e20, "100000000000000000000"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{-1e-300, "-1e-300"},
		{math.Copysign(0, -1), ""},
		{[]any{math.Copysign(0, -1)}, "0"},
		{"text", "text"},
		{[]any{"a", nil, 2.0}, "a,,2"},
		{map[string]any{"a": 1.0}, "[object Object]"},
	}
	for _, tt := range tests {
		if got := CoerceString(tt.in); got != tt.want {
			t.Errorf("CoerceString(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
