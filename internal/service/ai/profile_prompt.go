package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
)

const systemPrompt = "Kamu adalah asisten virtual yang membantu menjawab pertanyaan tentang pemilik portfolio dengan cara yang personal, informatif, dan sedikit humoris."

const answerRules = "Jawablah dengan bahasa Indonesia yang natural, ramah, dan informatif. Berikan jawaban yang spesifik sesuai dengan informasi di profil. " +
	"Variasikan struktur kalimat dan gaya bicara untuk terdengar lebih natural dan manusiawi. Gunakan sedikit humor yang ringan jika sesuai. " +
	"Bila pertanyaan di luar konteks profil, jelaskan bahwa kamu hanya bisa memberikan informasi sesuai profil yang tersedia. " +
	"Jangan membagikan informasi pribadi seperti hubungan, keuangan, kontak, usia, atau agama; alihkan ke proyek dan keahliannya."

// ProfilePrompt renders the prompts sent to the model. The profile block is
// built once because the profile never changes after startup.
type ProfilePrompt struct {
	name    string
	context string
}

// NewProfilePrompt prepares the prompt context for p.
func NewProfilePrompt(p *profile.Profile) *ProfilePrompt {
	var b strings.Builder

	fmt.Fprintf(&b, "PROFIL LENGKAP:\n")
	fmt.Fprintf(&b, "- Nama: %s\n", p.Name)
	fmt.Fprintf(&b, "- Lokasi: %s\n", p.Location)
	fmt.Fprintf(&b, "- Pendidikan: %s\n", p.Education)
	fmt.Fprintf(&b, "- Pekerjaan saat ini: %s\n", p.Occupation)
	fmt.Fprintf(&b, "- Pengalaman: %s\n", p.Experience)
	fmt.Fprintf(&b, "- Keahlian: %s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(&b, "- Hobi: %s\n", strings.Join(p.Hobbies, ", "))
	fmt.Fprintf(&b, "- Proyek unggulan: %s\n", strings.Join(p.Projects, ", "))
	fmt.Fprintf(&b, "- Prestasi: %s\n", strings.Join(p.Achievements, ", "))
	fmt.Fprintf(&b, "- Karakter: %s\n", p.Character)
	fmt.Fprintf(&b, "- Motto hidup: %s\n", p.LifeMotto)
	fmt.Fprintf(&b, "- Rencana masa depan: %s\n", p.FuturePlans)
	fmt.Fprintf(&b, "- Tools: %s\n", strings.Join(p.Tools, ", "))
	fmt.Fprintf(&b, "- Lagu favorit: %s\n", strings.Join(p.Songs, ", "))
	fmt.Fprintf(&b, "- Buku favorit: %s\n", strings.Join(p.Books, ", "))
	fmt.Fprintf(&b, "- Film favorit: %s\n", strings.Join(p.Movies, ", "))
	fmt.Fprintf(&b, "- Makanan favorit: %s\n", strings.Join(p.Foods, ", "))

	writeDetails(&b, "DETAIL KEAHLIAN", p.SkillDetails)
	writeDetails(&b, "DETAIL PROYEK", p.ProjectDetails)
	writeDetails(&b, "DETAIL HOBI", p.HobbyDetails)

	return &ProfilePrompt{name: p.Name, context: b.String()}
}

// System returns the system message.
func (pp *ProfilePrompt) System() string {
	return systemPrompt
}

// User wraps the question in the profile context.
func (pp *ProfilePrompt) User(question string) string {
	return fmt.Sprintf("Kamu adalah asisten pribadi dari %s yang cerdas, ramah, dan informatif. Jawab pertanyaan ini berdasarkan profil berikut:\n\n%s\nPertanyaan pengguna: %s\n\n%s",
		pp.name, pp.context, question, answerRules)
}

func writeDetails(b *strings.Builder, title string, details map[string]string) {
	// MarshalIndent sorts map keys, so the prompt is stable across runs.
	data, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintf(b, "\n%s:\n%s\n", title, data)
}
