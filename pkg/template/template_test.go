package template

import "testing"

func TestSubstituteReplacesToken(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{
			name:     "single token",
			template: "Good night {name}, sweet dreams.",
			values:   map[string]string{"name": "Léna"},
			want:     "Good night Léna, sweet dreams.",
		},
		{
			name:     "repeated token",
			template: "{name}, I said {name}!",
			values:   map[string]string{"name": "Star"},
			want:     "Star, I said Star!",
		},
		{
			name:     "value trimmed check only",
			template: "Hi {name}!",
			values:   map[string]string{"name": "my star"},
			want:     "Hi my star!",
		},
		{
			name:     "cjk text",
			template: "晚安{name}。",
			values:   map[string]string{"name": "我的小星星"},
			want:     "晚安我的小星星。",
		},
		{
			name:     "unknown keys untouched",
			template: "Hello {name} and {other}",
			values:   map[string]string{"name": "Léna"},
			want:     "Hello Léna and {other}",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Substitute(tc.template, tc.values); got != tc.want {
				t.Fatalf("Substitute() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSubstituteEmptyValueRemovesSeparator(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		// Only a separator *preceding* the token is removed with it; a
		// trailing comma is left in place.
		{"trailing comma stays", "Good morning {name}, how are you?", "Good morning, how are you?"},
		{"comma before token", "Have a wonderful day, {name}!", "Have a wonderful day!"},
		{"fullwidth comma", "我爱你，{name}。", "我爱你。"},
		{"leading token cjk", "{name}，你吃得好吗？", "，你吃得好吗？"},
		{"space only", "Good morning {name}!", "Good morning!"},
		{"token alone", "{name}", ""},
		{"no separator", "Hello{name}", "Hello"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Substitute(tc.template, map[string]string{"name": ""})
			if got != tc.want {
				t.Fatalf("Substitute(%q) = %q, want %q", tc.template, got, tc.want)
			}
		})
	}
}

func TestSubstituteWhitespaceValueTreatedAsEmpty(t *testing.T) {
	got := Substitute("Hi, {name}!", map[string]string{"name": "   "})
	if got != "Hi!" {
		t.Fatalf("Substitute() = %q, want %q", got, "Hi!")
	}
}

func TestSubstituteIdempotent(t *testing.T) {
	values := map[string]string{"name": "Leelou"}
	templates := []string{
		"Good morning {name}, how are you today?",
		"{name}，你今天过得怎么样？",
		"Happy birthday, {name}! Hope all your wishes come true!",
		"no token here",
	}
	for _, tmpl := range templates {
		once := Substitute(tmpl, values)
		twice := Substitute(once, values)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", tmpl, once, twice)
		}
	}
	empty := map[string]string{"name": ""}
	for _, tmpl := range templates {
		once := Substitute(tmpl, empty)
		twice := Substitute(once, empty)
		if once != twice {
			t.Fatalf("not idempotent with empty value for %q: %q != %q", tmpl, once, twice)
		}
	}
}

func TestSubstituteCollapsesWhitespace(t *testing.T) {
	got := Substitute("Good   morning {name} !", map[string]string{"name": ""})
	if got != "Good morning !" {
		t.Fatalf("Substitute() = %q", got)
	}
}

func TestSubstituteWithWesternIgnoresFullwidthComma(t *testing.T) {
	got := SubstituteWith(Western, "我爱你，{name}。", map[string]string{"name": ""})
	// The full-width comma is not in the separator set, so only the leading
	// whitespace rule applies and the comma stays behind.
	if got != "我爱你，。" {
		t.Fatalf("SubstituteWith(Western) = %q", got)
	}
}

func TestSubstituteDoesNotExpandDollarSigns(t *testing.T) {
	got := Substitute("Pay {name} now", map[string]string{"name": "$100"})
	if got != "Pay $100 now" {
		t.Fatalf("Substitute() = %q", got)
	}
}
