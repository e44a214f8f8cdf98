package fallback

import (
	"fmt"
	"strings"

	"github.com/danendrashafi/ai-portfolio/backend/internal/analysis/category"
	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
)

// Template renders one response body from the profile.
type Template func(p *profile.Profile, r Rand) string

const closerProbability = 0.3

var openers = []Template{
	func(p *profile.Profile, _ Rand) string { return fmt.Sprintf("Hai! Sebagai asisten %s, ", p.Name) },
	func(*profile.Profile, Rand) string { return "Senang kamu bertanya! " },
	func(*profile.Profile, Rand) string { return "Oke, jadi tentang itu... " },
	func(*profile.Profile, Rand) string { return "Hmm, pertanyaan bagus! " },
	func(*profile.Profile, Rand) string { return "Izinkan saya memberitahu kamu, " },
	func(*profile.Profile, Rand) string { return "Menarik sekali pertanyaannya! " },
}

var closers = []string{
	" Semoga info ini membantu!",
	" Ada hal lain yang ingin kamu ketahui?",
	" Silakan tanya lebih detail jika kamu mau!",
	" Jangan ragu untuk bertanya lebih lanjut ya!",
	" Bagaimana menurutmu?",
}

func firstN(items []string, n int) string {
	if len(items) < n {
		n = len(items)
	}
	return strings.Join(items[:n], ", ")
}

func trimStop(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".")
}

// deflections answer sensitive questions without touching the topic. Every
// variant pivots to a named project.
var deflections = map[category.Category][]Template{
	category.PersonalRelationship: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Wah, soal urusan hati itu %s lebih suka menyimpannya sendiri. Yang jelas, saat ini hatinya sedang tertambat pada proyek %s. Mau dengar ceritanya?", p.Name, pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Itu ranah pribadi yang tidak saya bagikan, ya. Tapi kalau soal komitmen, %s sangat setia pada %s dan sedang serius menggarap %s.", p.Name, pick(r, p.Skills), pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Hmm, pertanyaan itu di luar yang bisa saya ceritakan. Bagaimana kalau kita bahas %s saja? Proyek itu jauh lebih seru untuk diceritakan.", pick(r, p.Projects))
		},
	},
	category.PersonalFinancial: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Detail finansial pribadi %s tidak saya bagikan. Yang bisa saya ceritakan adalah nilai yang dia hasilkan lewat proyek seperti %s.", p.Name, pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Maaf, angka-angka seperti itu bersifat rahasia. Tapi investasi terbesar %s justru di skill %s, yang terlihat jelas di %s.", p.Name, pick(r, p.Skills), pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Soal itu biar jadi rahasia kecil %s ya. Kalau mau bicara angka, dampak proyek %s jauh lebih menarik untuk dibahas.", p.Name, pick(r, p.Projects))
		},
	},
	category.PersonalContact: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Untuk menjaga privasi, saya tidak membagikan data pribadi seperti itu. Cara terbaik mengenal %s adalah lewat karyanya, misalnya %s.", p.Name, pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Informasi itu tidak saya sebarkan di sini. Kalau ingin terhubung, gunakan jalur resmi di portofolio ini, dan sambil menunggu kamu bisa melihat %s.", pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Maaf, detail seperti itu tetap privat. Tapi %s selalu terbuka berdiskusi soal %s dan proyek %s.", p.Name, pick(r, p.Skills), pick(r, p.Projects))
		},
	},
	category.PersonalAge: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Angka yang satu itu biar jadi misteri, ya! Yang pasti %s sudah cukup matang untuk menuntaskan proyek seperti %s.", p.Name, pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Hmm, itu rahasia kecil %s. Yang lebih penting, kemampuannya di %s sudah teruji lewat %s.", p.Name, pick(r, p.Skills), pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Saya tidak membagikan data pribadi semacam itu. Tapi semangat belajarnya selalu muda, terlihat dari eksplorasinya di %s.", pick(r, p.Projects))
		},
	},
	category.PersonalReligion: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Itu ranah yang sangat pribadi dan tidak saya bahas di sini. Yang bisa saya ceritakan adalah nilai-nilai kerja %s, yang tercermin di proyek %s.", p.Name, pick(r, p.Projects))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Maaf, topik itu di luar yang saya bagikan. Bagaimana kalau kita ngobrol tentang %s atau proyek %s?", pick(r, p.Skills), pick(r, p.Projects))
		},
	},
}

var genericDeflections = []Template{
	func(p *profile.Profile, r Rand) string {
		return fmt.Sprintf("Maaf, topik itu termasuk ranah pribadi %s yang tidak saya bagikan. Bagaimana kalau kita bahas proyek %s saja?", p.Name, pick(r, p.Projects))
	},
	func(p *profile.Profile, r Rand) string {
		return fmt.Sprintf("Pertanyaan itu di luar hal yang bisa saya ceritakan. Tapi saya dengan senang hati menjelaskan keahlian %s di %s dan proyek %s.", p.Name, pick(r, p.Skills), pick(r, p.Projects))
	},
	func(p *profile.Profile, r Rand) string {
		return fmt.Sprintf("Hal itu biar tetap jadi privasi %s, ya. Sebagai gantinya, proyek %s punya cerita yang menarik untuk dibahas.", p.Name, pick(r, p.Projects))
	},
}

var informational = map[category.Category][]Template{
	category.Collaboration: {
		func(p *profile.Profile, r Rand) string {
			project := pick(r, p.Projects)
			return fmt.Sprintf("%s terbuka untuk kolaborasi, terutama yang berhubungan dengan %s. Sebagai gambaran, lihat saja proyek %s. %s", p.Name, pick(r, p.Skills), project, p.ProjectDetails[project])
		},
		func(p *profile.Profile, r Rand) string {
			project := pick(r, p.Projects)
			return fmt.Sprintf("Kalau kamu punya ide menarik, %s senang diajak kerja sama. Contoh hasil kolaborasinya adalah %s. %s", p.Name, project, p.ProjectDetails[project])
		},
	},
	category.Skills: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("%s sangat ahli dalam bidang %s. Khususnya di %s, %s.", p.Name, firstN(p.Skills, 3), p.Skills[0], strings.ToLower(trimStop(p.SkillDetails[p.Skills[0]])))
		},
		func(p *profile.Profile, r Rand) string {
			a, b := pick(r, p.Skills), pick(r, p.Skills)
			return fmt.Sprintf("Keahlian utama %s adalah di bidang %s dan %s. Tentang %s: %s.", p.Name, a, b, b, trimStop(p.SkillDetails[b]))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("%s punya keahlian yang kuat di %s dengan %s. Belakangan ini dia juga memperdalam %s.", p.Name, p.Skills[0], p.Experience, pick(r, p.Skills))
		},
	},
	category.Projects: {
		func(p *profile.Profile, r Rand) string {
			project := pick(r, p.Projects)
			return fmt.Sprintf("Salah satu proyek kebanggaan %s adalah %s. %s", p.Name, project, p.ProjectDetails[project])
		},
		func(p *profile.Profile, r Rand) string {
			project := pick(r, p.Projects)
			return fmt.Sprintf("%s telah mengerjakan beberapa proyek menarik, tapi yang paling dibanggakan adalah %s. %s", p.Name, project, p.ProjectDetails[project])
		},
		func(p *profile.Profile, r Rand) string {
			project := pick(r, p.Projects)
			return fmt.Sprintf("Proyek %s mungkin yang paling mencerminkan kemampuan %s. %s", project, p.Name, p.ProjectDetails[project])
		},
	},
	category.Hobbies: {
		func(p *profile.Profile, r Rand) string {
			hobby := pick(r, p.Hobbies)
			return fmt.Sprintf("%s memiliki beberapa hobi menarik, terutama %s. %s.", p.Name, hobby, trimStop(p.HobbyDetails[hobby]))
		},
		func(p *profile.Profile, r Rand) string {
			hobby := pick(r, p.Hobbies)
			return fmt.Sprintf("Di waktu luangnya, %s suka %s. %s.", p.Name, hobby, trimStop(p.HobbyDetails[hobby]))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Ketika tidak sedang coding, %s menghabiskan waktu untuk %s dan %s.", p.Name, pick(r, p.Hobbies), pick(r, p.Hobbies))
		},
	},
	category.DataScience: {
		func(p *profile.Profile, r Rand) string {
			project := p.Projects[0]
			return fmt.Sprintf("%s punya ketertarikan besar pada AI dan data. Dia telah mengerjakan proyek %s. %s", p.Name, project, p.ProjectDetails[project])
		},
		func(p *profile.Profile, r Rand) string {
			skill := pick(r, p.Skills)
			return fmt.Sprintf("Pengalaman %s di dunia AI dan data science cukup dalam. Salah satu andalannya adalah %s: %s.", p.Name, skill, trimStop(p.SkillDetails[skill]))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("AI adalah salah satu fokus utama %s saat ini. Dia menggabungkan %s dengan machine learning, seperti di proyek %s. Rencana ke depannya: %s", p.Name, p.Skills[0], pick(r, p.Projects), p.FuturePlans)
		},
	},
	category.Education: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("%s adalah lulusan %s. Pendidikan formalnya memberi dasar kuat untuk karir di bidang teknologi.", p.Name, p.Education)
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Untuk pendidikannya, %s menempuh studi di %s. Di sana dia mulai mengembangkan minat di bidang programming dan data science.", p.Name, p.Education)
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("%s belajar di %s, tapi banyak keahliannya juga didapat dari pembelajaran mandiri dan proyek-proyek yang dikerjakannya.", p.Name, p.Education)
		},
	},
	category.Achievements: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("%s cukup berbangga dengan prestasinya sebagai %s. Ini adalah pengakuan atas keahlian dan dedikasinya di bidang teknologi.", p.Name, pick(r, p.Achievements))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Salah satu pencapaian yang patut dibanggakan adalah %s. Ini menunjukkan kemampuan %s dalam menerapkan keahlian teknisnya secara praktis.", pick(r, p.Achievements), p.Name)
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Prestasi yang mungkin patut disebutkan adalah %s. %s selalu berusaha untuk berkontribusi dan berbagi pengetahuannya dengan komunitas.", pick(r, p.Achievements), p.Name)
		},
	},
	category.Personality: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("%s dikenal sebagai orang yang %s. Dia sangat detail dalam pekerjaannya dan selalu ingin memahami hal-hal baru.", p.Name, p.Character)
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Kepribadian %s bisa digambarkan sebagai %s. Dia senang menghadapi tantangan dan selalu mencari cara untuk meningkatkan keterampilannya.", p.Name, p.Character)
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Sebagai seseorang yang %s, %s selalu mengejar kesempurnaan dalam setiap proyeknya.", p.Character, p.Name)
		},
	},
	category.Strengths: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Kelebihan terbesar %s ada pada sifatnya yang %s, ditambah penguasaan %s. Kekurangannya? Kadang terlalu perfeksionis sampai lupa waktu.", p.Name, p.Character, pick(r, p.Skills))
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Orang yang bekerja dengan %s biasanya menyebut dia %s. Kelemahannya, dia sulit menolak tantangan baru.", p.Name, p.Character)
		},
	},
	category.FuturePlans: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Untuk masa depan, %s berencana untuk %s. Dia selalu melihat teknologi sebagai alat untuk membuat perubahan positif.", p.Name, lowerFirst(trimStop(p.FuturePlans)))
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("%s memiliki visi yang jelas: %s", p.Name, p.FuturePlans)
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Rencana %s ke depan adalah %s. Dia percaya bahwa AI dan machine learning akan memainkan peran penting dalam menyelesaikan masalah-masalah kompleks.", p.Name, lowerFirst(trimStop(p.FuturePlans)))
		},
	},
	category.Experience: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("%s sudah mengantongi %s.", p.Name, p.Experience)
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Dengan %s, %s sudah menangani proyek seperti %s.", p.Experience, p.Name, pick(r, p.Projects))
		},
	},
	category.Work: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Saat ini %s bekerja sebagai %s.", p.Name, p.Occupation)
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("%s adalah %s. Sehari-hari dia banyak bekerja dengan %s.", p.Name, p.Occupation, pick(r, p.Skills))
		},
	},
	category.Location: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("%s berbasis di %s.", p.Name, p.Location)
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Sehari-hari %s beraktivitas di %s, tapi senang bekerja remote dengan tim dari mana saja.", p.Name, p.Location)
		},
	},
	category.Tools: {
		func(p *profile.Profile, r Rand) string {
			tool := pick(r, p.Tools)
			return fmt.Sprintf("Salah satu alat kerja favorit %s adalah %s. %s.", p.Name, tool, trimStop(p.ToolDetails[tool]))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Setup harian %s cukup sederhana: %s.", p.Name, firstN(p.Tools, len(p.Tools)))
		},
		func(p *profile.Profile, r Rand) string {
			tool := pick(r, p.Tools)
			return fmt.Sprintf("Tanpa %s, rasanya %s kurang lengkap bekerja. %s.", tool, p.Name, trimStop(p.ToolDetails[tool]))
		},
	},
	category.WebDevelopment: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Di sisi frontend, %s mengandalkan %s. %s.", p.Name, p.Skills[0], trimStop(p.SkillDetails[p.Skills[0]]))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Sebagai %s, %s terbiasa membangun antarmuka dengan %s.", p.Occupation, p.Name, firstN(p.Skills, 2))
		},
	},
	category.Music: {
		func(p *profile.Profile, r Rand) string {
			song := pick(r, p.Songs)
			return fmt.Sprintf("Lagu yang sering menemani %s adalah %s. %s.", p.Name, song, trimStop(p.SongDetails[song]))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Playlist %s cukup beragam, tapi %s hampir selalu ada di dalamnya.", p.Name, pick(r, p.Songs))
		},
	},
	category.Books: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Buku yang paling sering direkomendasikan %s adalah %s.", p.Name, pick(r, p.Books))
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Rak buku %s diisi judul seperti %s.", p.Name, firstN(p.Books, 3))
		},
	},
	category.Movies: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Film favorit %s? Jawabannya hampir selalu %s.", p.Name, pick(r, p.Movies))
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Kalau sedang santai, %s suka menonton ulang %s.", p.Name, firstN(p.Movies, 2))
		},
	},
	category.Food: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Soal kuliner, %s paling tidak bisa menolak %s.", p.Name, pick(r, p.Foods))
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Menu andalan %s saat lembur: %s.", p.Name, firstN(p.Foods, 3))
		},
	},
	category.Quotes: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Salah satu quotes favorit %s adalah '%s'", p.Name, pick(r, p.FavoriteQuotes))
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Motto hidup %s sederhana: %s", p.Name, p.LifeMotto)
		},
	},
	category.Advice: {
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Saran dari %s: mulai dari satu proyek kecil dengan %s, selesaikan, lalu tingkatkan pelan-pelan.", p.Name, pick(r, p.Skills))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Tips versi %s: kuasai dasar %s dulu, lalu belajar dari membaca kode orang lain.", p.Name, pick(r, p.Skills))
		},
	},
	category.FunFact: {
		func(p *profile.Profile, r Rand) string {
			hobby := pick(r, p.Hobbies)
			return fmt.Sprintf("Fakta unik: selain coding, %s juga gemar %s. %s.", p.Name, hobby, trimStop(p.HobbyDetails[hobby]))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Mungkin belum banyak yang tahu, %s pernah tercatat sebagai %s.", p.Name, pick(r, p.Achievements))
		},
	},
	category.Identity: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Saya asisten virtual %s, seorang %s yang berbasis di %s.", p.Name, p.Occupation, p.Location)
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Perkenalkan, ini portfolio %s. Dia lulusan %s dan kini bekerja sebagai %s.", p.Name, p.Education, p.Occupation)
		},
	},
	category.Gratitude: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Sama-sama! Senang bisa membantu kamu mengenal %s lebih jauh.", p.Name)
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Terima kasih kembali! %s pasti senang ada yang tertarik dengan karyanya.", p.Name)
		},
	},
	category.Greeting: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("Halo juga! Saya siap menjawab pertanyaan seputar %s.", p.Name)
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Hai! Mau tahu tentang proyek, keahlian, atau hobi %s? Misalnya %s.", p.Name, pick(r, p.Projects))
		},
	},
	category.General: {
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("%s adalah seorang %s yang berbasis di %s. Dia memiliki keahlian di bidang %s dan sangat tertarik dengan perkembangan teknologi terbaru.", p.Name, p.Occupation, p.Location, firstN(p.Skills, 3))
		},
		func(p *profile.Profile, r Rand) string {
			return fmt.Sprintf("Sebagai seorang yang %s, %s terus mengembangkan dirinya di bidang teknologi. Salah satu quotes favoritnya adalah '%s'", p.Character, p.Name, pick(r, p.FavoriteQuotes))
		},
		func(p *profile.Profile, _ Rand) string {
			return fmt.Sprintf("%s menggabungkan keahlian teknis dengan kreativitas dalam setiap proyeknya. Dengan %s, dia terus mencari cara untuk membuat teknologi lebih berdampak positif.", p.Name, p.Experience)
		},
	},
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToLower(string(r[0])))[0]
	return string(r)
}
