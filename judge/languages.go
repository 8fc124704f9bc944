package judge

// Language maps our short language tag to the execution service's numeric
// language id.
type Language struct {
	Tag      string
	Display  string
	JudgeID  int
	Enabled  bool
	MonacoID string
}

// GetHardcodedLanguageList returns the languages practical questions may be
// written in. Ids follow the judge0 CE catalogue.
func GetHardcodedLanguageList() []Language {
	return []Language{
		{
			Tag:      "python3",
			Display:  "Python 3.8",
			JudgeID:  71,
			Enabled:  true,
			MonacoID: "python",
		},
		{
			Tag:      "go",
			Display:  "Go 1.13",
			JudgeID:  60,
			Enabled:  true,
			MonacoID: "go",
		},
		{
			Tag:      "cpp17",
			Display:  "C++ 17 (GCC 9)",
			JudgeID:  54,
			Enabled:  true,
			MonacoID: "cpp",
		},
		{
			Tag:      "java",
			Display:  "Java 13",
			JudgeID:  62,
			Enabled:  true,
			MonacoID: "java",
		},
		{
			Tag:      "javascript",
			Display:  "JavaScript (Node 12)",
			JudgeID:  63,
			Enabled:  true,
			MonacoID: "javascript",
		},
		{
			Tag:      "csharp",
			Display:  "C# (Mono 6)",
			JudgeID:  51,
			Enabled:  false,
			MonacoID: "csharp",
		},
	}
}

// LanguageByTag resolves a language tag to its catalogue entry. The bool is
// false for unknown or disabled tags.
func LanguageByTag(tag string) (Language, bool) {
	for _, lang := range GetHardcodedLanguageList() {
		if lang.Tag == tag && lang.Enabled {
			return lang, true
		}
	}
	return Language{}, false
}
