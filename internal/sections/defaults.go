package sections

import (
	"strconv"
	"strings"

	"github.com/rishi-212005/portfolio-server/internal/content"
)

// clampLevel parses a proficiency value and clamps it to [0, 100].
// Non-numeric input parses to 0 before clamping.
func clampLevel(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		n = 0
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// splitList turns a delimiter-separated form value into a trimmed slice.
func splitList(value, sep string) []string {
	var out []string
	for _, part := range strings.Split(value, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newProjectEditor(store *content.Store) *Editor[Project] {
	return NewEditor(store, "projects", defaultProjects,
		func(id string) Project {
			return Project{ID: id, Title: "New Project", Description: "Description here", Category: "Web App", Tech: []string{"React"}}
		},
		func(p *Project, field, value string) bool {
			switch field {
			case "title":
				p.Title = value
			case "description":
				p.Description = value
			case "category":
				p.Category = value
			case "tech":
				p.Tech = splitList(value, ",")
			case "github_url":
				p.GithubURL = value
			case "demo_url":
				p.DemoURL = value
			default:
				return false
			}
			return true
		})
}

func newExperienceEditor(store *content.Store) *Editor[Experience] {
	return NewEditor(store, "experiences", defaultExperiences,
		func(id string) Experience {
			return Experience{ID: id, Title: "New Role", Organization: "Company", Period: "2024", Location: "Location", Points: []string{"Describe your work"}, Type: "work"}
		},
		func(e *Experience, field, value string) bool {
			switch field {
			case "title":
				e.Title = value
			case "organization":
				e.Organization = value
			case "period":
				e.Period = value
			case "location":
				e.Location = value
			case "points":
				e.Points = splitList(value, "\n")
			case "type":
				e.Type = value
			case "certificateUrl":
				e.CertificateURL = value
			default:
				return false
			}
			return true
		})
}

func newEducationEditor(store *content.Store) *Editor[Education] {
	return NewEditor(store, "education", defaultEducation,
		func(id string) Education {
			return Education{ID: id, Title: "Degree", Organization: "Institution", Period: "2024", Detail: "Details"}
		},
		func(e *Education, field, value string) bool {
			switch field {
			case "title":
				e.Title = value
			case "organization":
				e.Organization = value
			case "period":
				e.Period = value
			case "detail":
				e.Detail = value
			default:
				return false
			}
			return true
		})
}

func newCertificationEditor(store *content.Store) *Editor[Certification] {
	return NewEditor(store, "certifications", defaultCertifications,
		func(id string) Certification {
			return Certification{ID: id, Title: "New Certification", Issuer: "Issuer", Date: "2024"}
		},
		func(c *Certification, field, value string) bool {
			switch field {
			case "title":
				c.Title = value
			case "issuer":
				c.Issuer = value
			case "date":
				c.Date = value
			case "credentialUrl":
				c.CredentialURL = value
			default:
				return false
			}
			return true
		})
}

func newAchievementEditor(store *content.Store) *Editor[Achievement] {
	return NewEditor(store, "achievements", defaultAchievements,
		func(id string) Achievement {
			return Achievement{ID: id, Title: "New Achievement", Description: "Description", Icon: "star"}
		},
		func(a *Achievement, field, value string) bool {
			switch field {
			case "title":
				a.Title = value
			case "description":
				a.Description = value
			case "icon":
				a.Icon = value
			default:
				return false
			}
			return true
		})
}

func newSkillBarEditor(store *content.Store) *Editor[SkillBar] {
	return NewEditor(store, "skills", defaultSkillBars,
		func(id string) SkillBar {
			return SkillBar{ID: id, Name: "New Skill"}
		},
		func(s *SkillBar, field, value string) bool {
			switch field {
			case "name":
				s.Name = value
			case "level":
				s.Level = clampLevel(value)
			default:
				return false
			}
			return true
		})
}

func newTechStackEditor(store *content.Store) *Editor[TechStackEntry] {
	return NewEditor(store, "tech", defaultTechStack,
		func(id string) TechStackEntry {
			return TechStackEntry{ID: id, Name: "New Tech"}
		},
		func(t *TechStackEntry, field, value string) bool {
			if field != "name" {
				return false
			}
			t.Name = value
			return true
		})
}

func newHighlightEditor(store *content.Store) *Editor[Highlight] {
	return NewEditor(store, "highlights", defaultHighlights,
		func(id string) Highlight {
			return Highlight{ID: id, Icon: "code", Title: "New Skill", Desc: "Description", Stat: "0", StatLabel: "Label"}
		},
		func(h *Highlight, field, value string) bool {
			switch field {
			case "icon":
				h.Icon = value
			case "title":
				h.Title = value
			case "desc":
				h.Desc = value
			case "stat":
				h.Stat = value
			case "statLabel":
				h.StatLabel = value
			default:
				return false
			}
			return true
		})
}

// Seed content shown before the owner edits anything.

var defaultProjects = []Project{
	{ID: "1", Title: "Academia Authenticator", Description: "AI-powered certificate verification system that detects forged academic documents.", Category: "AI / Backend", Tech: []string{"Python", "OCR", "APIs"}, GithubURL: "https://github.com/Rishi-212005/ACADEMIC-AUTHENTICATOR"},
	{ID: "2", Title: "AI-Powered Raw Material Marketplace", Description: "Full-stack marketplace for suppliers and shopkeepers with AI-assisted inventory and order management.", Category: "Full Stack", Tech: []string{"React", "Node.js", "Express", "MySQL"}, GithubURL: "https://github.com/Rishi-212005/AI-POWERED-SHOPKEEPER-VENDOR-MANAGEMENT-SYSTEM"},
	{ID: "3", Title: "InternConnect Campus Portal", Description: "Internship and placement portal with role-based access for students, TPOs, and recruiters.", Category: "Full Stack", Tech: []string{"PHP", "MySQL", "JavaScript"}, GithubURL: "https://github.com/Rishi-212005/InternConnect-Campus-Portal"},
	{ID: "4", Title: "Library Seat Management System", Description: "Web system to reserve and manage library seats with simple admin controls.", Category: "Web App", Tech: []string{"PHP", "MySQL", "Bootstrap"}, GithubURL: "https://github.com/Rishi-212005/Library-Seat-Management-System"},
	{ID: "5", Title: "Encoding-Decoding Management System", Description: "Tool to securely encode and decode messages with a clean web interface.", Category: "Utility", Tech: []string{"PHP", "MySQL", "JavaScript"}, GithubURL: "https://github.com/Rishi-212005/ENCODING-DECODING-MANAGEMENT-SYSTEM"},
	{ID: "6", Title: "Portfolio Website (Personel-Portfolio)", Description: "Modern portfolio site showcasing projects, skills, and experience with smooth UI.", Category: "Web App", Tech: []string{"React", "TypeScript", "Tailwind"}, GithubURL: "https://github.com/Rishi-212005/Personel-Portfolio"},
	{ID: "7", Title: "Resume AI Assistant", Description: "AI-driven helper that tailors resume and profile content using your data.", Category: "AI / Web", Tech: []string{"TypeScript", "React", "AI APIs"}, GithubURL: "https://github.com/Rishi-212005/resume-ai-master"},
	{ID: "8", Title: "Sai's Digital Canvas", Description: "Interactive 3D-inspired personal canvas exploring ideas and experiments.", Category: "Experimental", Tech: []string{"React", "Three.js", "TypeScript"}, GithubURL: "https://github.com/Rishi-212005/sai-s-digital-canvas"},
}

var defaultExperiences = []Experience{
	{
		ID: "1", Title: "Software Engineer Intern", Organization: "National Informatics Centre (NIC)",
		Period: "May 2025 – Jul 2025", Location: "Ananthapuramu, India",
		Points: []string{
			"Worked on CT Ais and Social Welfare Departments project",
			"Built secure, database-driven web applications using PHP & MySQL",
			"Collaborated with senior engineers on system architecture",
		},
		Type: "work", CertificateURL: "/certificates/nic-internship.pdf",
	},
}

var defaultEducation = []Education{
	{ID: "1", Title: "B.Tech Computer Science & Engineering", Organization: "JNTU Anantapur", Period: "2023 – 2027", Detail: "Specializing in Software Engineering & Cybersecurity"},
	{ID: "2", Title: "Intermediate (MPC)", Organization: "Narayana Jr College", Period: "2021 – 2023", Detail: "JEE Mains 2024 - Top 4% Percentile"},
}

var defaultCertifications = []Certification{
	{ID: "0", Title: "NIC e-Governance Internship", Issuer: "National Informatics Centre", Date: "Sep 2025", CredentialURL: "/certificates/nic-internship.pdf"},
	{ID: "1", Title: "Cybersecurity Fundamentals", Issuer: "Infosys Springboard", Date: "Jan 2026", CredentialURL: "/certificates/cybersecurity-fundamentals.pdf"},
	{ID: "2", Title: "Fundamentals of Cryptography", Issuer: "Infosys Springboard", Date: "Jan 2026", CredentialURL: "/certificates/fundamentals-of-cryptography.pdf"},
	{ID: "3", Title: "Cryptography in IT Security & Hacking", Issuer: "Infosys Springboard", Date: "Feb 2026", CredentialURL: "/certificates/cryptography-it-security-hacking.pdf"},
	{ID: "4", Title: "Introduction to PKI", Issuer: "Infosys Springboard", Date: "Feb 2026", CredentialURL: "/certificates/intro-to-pki.pdf"},
	{ID: "5", Title: "Python Case Study - Cryptography", Issuer: "Infosys Springboard", Date: "Feb 2026", CredentialURL: "/certificates/python-cryptography.pdf"},
}

var defaultAchievements = []Achievement{
	{ID: "1", Title: "JEE Mains Top 4%", Description: "Secured top 4 percentile in JEE Mains 2024", Icon: "trending-up"},
	{ID: "2", Title: "NIC Internship", Description: "Selected for prestigious NIC e-Governance internship", Icon: "award"},
	{ID: "3", Title: "Cybersecurity Certs", Description: "3+ certifications in cybersecurity and ethical hacking", Icon: "shield"},
	{ID: "4", Title: "10+ Projects", Description: "Built and deployed 10+ full-stack web applications", Icon: "star"},
}

var defaultSkillBars = []SkillBar{
	{ID: "1", Name: "Frontend Development", Level: 90},
	{ID: "2", Name: "Backend Development", Level: 82},
	{ID: "3", Name: "Database Design", Level: 85},
	{ID: "4", Name: "Auth & Security", Level: 80},
	{ID: "5", Name: "API Development", Level: 85},
	{ID: "6", Name: "DevOps & Tools", Level: 72},
}

var defaultTechStack = []TechStackEntry{
	{ID: "1", Name: "JavaScript"}, {ID: "2", Name: "TypeScript"}, {ID: "3", Name: "PHP"},
	{ID: "4", Name: "Python"}, {ID: "5", Name: "React"}, {ID: "6", Name: "Node.js"},
	{ID: "7", Name: "Express"}, {ID: "8", Name: "HTML5"}, {ID: "9", Name: "CSS3"},
	{ID: "10", Name: "Tailwind"}, {ID: "11", Name: "MySQL"}, {ID: "12", Name: "MongoDB"},
	{ID: "13", Name: "Git"}, {ID: "14", Name: "Linux"},
}

var defaultHighlights = []Highlight{
	{ID: "1", Icon: "code", Title: "Full Stack Dev", Desc: "React, Node.js, PHP, MySQL", Stat: "10+", StatLabel: "Projects"},
	{ID: "2", Icon: "shield", Title: "Cybersecurity", Desc: "Auth, RBAC, Secure Design", Stat: "3+", StatLabel: "Certifications"},
	{ID: "3", Icon: "server", Title: "e-Governance", Desc: "NIC Intern, Govt. Systems", Stat: "1", StatLabel: "Internship"},
	{ID: "4", Icon: "cpu", Title: "Problem Solver", Desc: "Top 4% JEE Mains 2024", Stat: "4%", StatLabel: "Percentile"},
}
