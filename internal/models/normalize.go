package models

// Normalize coerces an arbitrary decoded JSON value into a NamingResult.
// It never fails: missing or mistyped fields become empty strings or lists.
func Normalize(raw any) NamingResult {
	data, ok := raw.(map[string]any)
	if !ok {
		return DefaultResult()
	}

	primary := asObject(data["primaryName"])
	analysis := asObject(data["analysis"])

	result := NamingResult{
		PrimaryName: PrimaryName{
			Name:          CoerceString(primary["name"]),
			Pronunciation: pronunciation(primary),
			Tagline:       CoerceString(primary["tagline"]),
		},
		Alternatives: []Alternative{},
		Analysis: Analysis{
			SajuSummary:      CoerceString(analysis["sajuSummary"]),
			NameologySummary: CoerceString(analysis["nameologySummary"]),
			PracticalReason:  CoerceString(analysis["practicalReason"]),
		},
		UsageTips:  []string{},
		Disclaimer: CoerceString(data["disclaimer"]),
	}

	for _, item := range asList(data["alternatives"]) {
		alt := asObject(item)
		name := CoerceString(alt["name"])
		if name == "" {
			continue
		}
		result.Alternatives = append(result.Alternatives, Alternative{
			Name:          name,
			Pronunciation: pronunciation(alt),
			Reason:        CoerceString(alt["reason"]),
		})
	}

	for _, tip := range asList(data["usageTips"]) {
		if s := CoerceString(tip); s != "" {
			result.UsageTips = append(result.UsageTips, s)
		}
	}

	return result
}

// 모델이 "pronunciation" 키로 답하는 경우도 받아준다.
func pronunciation(m map[string]any) string {
	if s := CoerceString(m["hangulPronunciation"]); s != "" {
		return s
	}
	return CoerceString(m["pronunciation"])
}
