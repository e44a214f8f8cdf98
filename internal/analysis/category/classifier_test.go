package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExamples(t *testing.T) {
	cases := []struct {
		question string
		want     Category
	}{
		{"Apa hobimu?", Hobbies},
		{"Siapa pacarmu?", PersonalRelationship},
		{"Berapa gaji dia sekarang?", PersonalFinancial},
		{"Boleh minta nomor HP-nya?", PersonalContact},
		{"Umur kamu berapa?", PersonalAge},
		{"Apa agamanya?", PersonalReligion},
		{"Apa keahlian utamanya?", Skills},
		{"Ceritakan proyek terbaik", Projects},
		{"Dia kuliah di mana?", Education},
		{"Prestasi apa yang dia punya?", Achievements},
		{"MBTI-nya apa?", Personality},
		{"Lagu favorit?", Music},
		{"Film favorit?", Movies},
		{"Mau kolaborasi bisa?", Collaboration},
		{"Terima kasih!", Gratitude},
		{"Hai!", Greeting},
		{"Assalamualaikum, kak", Greeting},
		{"Halo!", Greeting},
		{"Pakai Tailwind?", WebDevelopment},
		{"xyz", General},
		{"", General},
	}

	for _, tc := range cases {
		t.Run(tc.question, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.question))
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Projects, Classify("PROYEK"))
	assert.Equal(t, Projects, Classify("Proyek"))
}

func TestRelationshipBeatsProject(t *testing.T) {
	assert.Equal(t, PersonalRelationship, Classify("pacar kamu ikut proyek apa?"))
	assert.Equal(t, PersonalRelationship, Classify("proyek bareng pacar?"))
}

func TestEarlierRuleWinsForEveryPair(t *testing.T) {
	table := Rules()
	for i := range table {
		for j := i + 1; j < len(table); j++ {
			hi, lo := table[i], table[j]
			if hi.Category == lo.Category {
				continue
			}
			question := lo.Keywords[0] + " dan " + hi.Keywords[0]
			got, _ := Explain(question)
			// A third rule earlier than both may match a keyword substring; it
			// still must not be the lower-priority one.
			assert.NotEqual(t, lo.Category, got, "question %q", question)
		}
	}
}

// Every keyword containing an earlier rule's keyword of another category can
// never decide a question. pencapaian ("ai") is kept as inherited behaviour.
func TestNoKeywordIsShadowed(t *testing.T) {
	allowed := map[string]bool{"pencapaian": true}

	table := Rules()
	for i, rule := range table {
		for _, keyword := range rule.Keywords {
			if allowed[keyword] {
				continue
			}
			for _, earlier := range table[:i] {
				if earlier.Category == rule.Category {
					continue
				}
				for _, e := range earlier.Keywords {
					assert.NotContains(t, keyword, e, "%s keyword %q is shadowed by %s keyword %q", rule.Category, keyword, earlier.Category, e)
				}
			}
		}
	}
}

func TestSensitiveRulesComeFirst(t *testing.T) {
	seenInformational := false
	for _, r := range Rules() {
		if !r.Category.Sensitive() {
			seenInformational = true
			continue
		}
		require.False(t, seenInformational, "sensitive rule %s after an informational rule", r.Category)
	}
}

func TestAIAliasesDataScience(t *testing.T) {
	assert.Equal(t, DataScience, Classify("Apa pendapatnya tentang AI?"))
	assert.Equal(t, DataScience, Classify("pengalaman machine learning?"))
	assert.Equal(t, DataScience, Classify("dia paham data science?"))
}

// Matching is substring based, so short keywords fire inside longer words.
// These cases pin the current behaviour rather than endorse it.
func TestSubstringFalsePositivesArePreserved(t *testing.T) {
	cases := []struct {
		question string
		want     Category
		keyword  string
	}{
		{"Bagaimana pendidikannya?", DataScience, "ai"},
		{"Dia pakai laptop apa?", DataScience, "ai"},
		{"Paham HTML?", DataScience, "ml"},
		{"Musik apa yang dia suka?", Hobbies, "suka"},
	}
	for _, tc := range cases {
		got, keyword := Explain(tc.question)
		assert.Equal(t, tc.want, got, tc.question)
		assert.Equal(t, tc.keyword, keyword, tc.question)
	}
}

func TestEveryNonEmptyQuestionGetsKnownCategory(t *testing.T) {
	known := make(map[Category]bool)
	for _, c := range All() {
		known[c] = true
	}
	for _, q := range []string{"a", "?", "🙂", "Apa kabar", "what is your stack", "1234", "pacar proyek hobi"} {
		assert.True(t, known[Classify(q)], q)
	}
}

func TestAllHasGeneralLastAndNoDuplicates(t *testing.T) {
	all := All()
	assert.Equal(t, General, all[len(all)-1])

	seen := make(map[Category]bool)
	for _, c := range all {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
	assert.GreaterOrEqual(t, len(all), 30)
}

func TestRulesReturnsCopy(t *testing.T) {
	table := Rules()
	table[0].Keywords[0] = "changed"
	assert.Equal(t, "pacar", Rules()[0].Keywords[0])
}

func TestKeywordsForMergesAliasedRules(t *testing.T) {
	kws := KeywordsFor(DataScience)
	assert.Contains(t, kws, "ai")
	assert.Contains(t, kws, "pandas")
}
