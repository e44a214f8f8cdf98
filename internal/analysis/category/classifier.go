package category

import "strings"

// Category is the topic label assigned to a question.
type Category string

const (
	PersonalRelationship Category = "personal_relationship"
	PersonalFinancial    Category = "personal_financial"
	PersonalContact      Category = "personal_contact"
	PersonalAge          Category = "personal_age"
	PersonalReligion     Category = "personal_religion"
	PersonalHealth       Category = "personal_health"
	PersonalFamily       Category = "personal_family"
	PersonalPolitics     Category = "personal_politics"

	Collaboration  Category = "collaboration"
	Skills         Category = "skills"
	Projects       Category = "projects"
	Hobbies        Category = "hobbies"
	DataScience    Category = "data_science"
	Education      Category = "education"
	Achievements   Category = "achievements"
	Personality    Category = "personality"
	Strengths      Category = "strengths"
	FuturePlans    Category = "future_plans"
	Experience     Category = "experience"
	Work           Category = "work"
	Location       Category = "location"
	Tools          Category = "tools"
	WebDevelopment Category = "web_development"
	Music          Category = "music"
	Books          Category = "books"
	Movies         Category = "movies"
	Food           Category = "food"
	Quotes         Category = "quotes"
	Advice         Category = "advice"
	FunFact        Category = "fun_fact"
	Identity       Category = "identity"
	Gratitude      Category = "gratitude"
	Greeting       Category = "greeting"
	General        Category = "general"
)

var sensitive = map[Category]bool{
	PersonalRelationship: true,
	PersonalFinancial:    true,
	PersonalContact:      true,
	PersonalAge:          true,
	PersonalReligion:     true,
	PersonalHealth:       true,
	PersonalFamily:       true,
	PersonalPolitics:     true,
}

// Sensitive reports whether questions in c must be deflected instead of answered.
func (c Category) Sensitive() bool {
	return sensitive[c]
}

// Rule maps a keyword set to a category. A keyword matches anywhere inside
// the lower-cased question, including inside longer words.
type Rule struct {
	Category Category
	Keywords []string
}

// rules is evaluated top to bottom and the first match wins. Sensitive rules
// come first so that "pacar" beats "proyek" in the same question.
var rules = []Rule{
	{PersonalRelationship, []string{"pacar", "gebetan", "jodoh", "nikah", "istri", "suami", "tunangan", "pasangan", "jomblo", "single", "kekasih", "crush"}},
	{PersonalFinancial, []string{"gaji", "penghasilan", "pendapatan", "salary", "income", "kekayaan", "uangnya", "duit", "tabungan", "utang", "rekening"}},
	{PersonalContact, []string{"nomor hp", "no hp", "nomor telepon", "telepon", "whatsapp", "email", "alamat", "kontak"}},
	{PersonalAge, []string{"umur", "usia", "lahir", "ulang tahun"}},
	{PersonalReligion, []string{"agama", "ibadah", "keyakinan", "religius"}},
	{PersonalHealth, []string{"penyakit", "sakit", "kesehatan", "berat badan", "tinggi badan"}},
	{PersonalFamily, []string{"keluarga", "orang tua", "ayah", "ibunya", "adik", "kakak", "saudara"}},
	{PersonalPolitics, []string{"politik", "partai", "pemilu", "presiden", "capres"}},

	{Collaboration, []string{"kolaborasi", "kerja sama", "kerjasama", "freelance", "hire", "rekrut", "lowongan"}},
	{Skills, []string{"keahlian", "skill", "bisa", "kemampuan", "ahli"}},
	{Projects, []string{"proyek", "project", "karya", "portfolio", "aplikasi"}},
	{Hobbies, []string{"hobi", "suka", "waktu luang", "kegiatan", "aktivitas"}},
	{WebDevelopment, []string{"frontend", "front-end", "next.js", "nextjs", "react", "tailwind", "website"}},
	// "hai" and "assalamualaikum" both contain "ai" and must be seen first.
	{Greeting, []string{"hai", "assalamualaikum"}},
	// AI questions are answered from the data science material on purpose.
	{DataScience, []string{"ai", "artificial intelligence", "machine learning", "ml", "kecerdasan"}},
	{DataScience, []string{"data science", "analisis data", "pandas", "scikit"}},
	{Education, []string{"pendidikan", "sekolah", "kuliah", "belajar", "kampus"}},
	{Achievements, []string{"prestasi", "pencapaian", "award", "penghargaan"}},
	{Personality, []string{"karakter", "kepribadian", "sifat", "tipe", "mbti"}},
	{Strengths, []string{"kelebihan", "kekurangan", "kelemahan", "kekuatan"}},
	{FuturePlans, []string{"rencana", "masa depan", "target", "tujuan", "cita"}},
	{Experience, []string{"pengalaman", "experience", "karir", "karier", "berapa lama"}},
	{Work, []string{"pekerjaan", "kerja", "kantor", "perusahaan", "profesi", "job"}},
	{Location, []string{"lokasi", "tinggal", "domisili", "kota", "berasal"}},
	{Tools, []string{"tools", "laptop", "editor", "vscode", "perangkat", "setup"}},
	{Music, []string{"lagu", "musik", "song", "playlist", "penyanyi"}},
	{Books, []string{"buku", "novel", "bacaan"}},
	{Movies, []string{"film", "movie", "series", "nonton"}},
	{Food, []string{"makan", "kuliner", "masakan", "minuman", "kopi"}},
	{Quotes, []string{"quote", "kutipan", "motto", "prinsip"}},
	{Advice, []string{"tips", "saran", "nasihat", "rekomendasi"}},
	{FunFact, []string{"fakta", "fun fact", "unik"}},
	{Identity, []string{"siapa", "perkenalkan", "kenalan", "nama"}},
	{Gratitude, []string{"terima kasih", "makasih", "thanks", "thank you"}},
	{Greeting, []string{"halo", "hallo", "hello", "selamat pagi", "selamat siang", "selamat malam"}},
}

// Classify maps a question to exactly one category.
func Classify(question string) Category {
	c, _ := Explain(question)
	return c
}

// Explain is Classify plus the keyword that decided it. The keyword is empty
// for the General fallback.
func Explain(question string) (Category, string) {
	normalized := strings.ToLower(question)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return rule.Category, keyword
			}
		}
	}
	return General, ""
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// All lists every category, including General.
func All() []Category {
	seen := make(map[Category]bool, len(rules)+1)
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return append(out, General)
}

// KeywordsFor returns every keyword that routes to c.
func KeywordsFor(c Category) []string {
	var out []string
	for _, r := range rules {
		if r.Category == c {
			out = append(out, r.Keywords...)
		}
	}
	return out
}
