package chat

import (
	"fmt"
	"strings"
)

// ProjectFact is one project entry in the knowledge base.
type ProjectFact struct {
	Title       string
	Description string
	Tech        []string
}

// KnowledgeBase is the static set of facts both engine variants answer from.
// The local engine formats these directly; the remote engine embeds them in
// its system instruction.
type KnowledgeBase struct {
	FullName     string
	Email        string
	Phone        string
	Location     string
	Internship   string
	Skills       []string
	Interests    []string
	Projects     []ProjectFact
	Education    []string
	Achievements []string
}

// DefaultKnowledgeBase returns the site owner's facts.
func DefaultKnowledgeBase() KnowledgeBase {
	return KnowledgeBase{
		FullName:   "Sai Rishi Kumar Vedi",
		Email:      "Sairishikumar.2005@gmail.com",
		Phone:      "+91 9390455681",
		Location:   "Anantapur, Andhra Pradesh, India",
		Internship: "Rishi worked as a Software Engineer Intern at the National Informatics Centre (NIC), contributing to e-Governance systems for the CT Ais and Social Welfare Departments. He built secure, database-driven web applications using PHP and MySQL and implemented authentication and role-based access control for government applications.",
		Skills: []string{
			"React", "JavaScript", "TypeScript", "HTML5", "CSS3", "Tailwind CSS",
			"Node.js", "Express", "PHP", "MySQL", "MongoDB", "Git", "Linux",
		},
		Interests: []string{"Cybersecurity", "Secure System Design", "RBAC", "Authentication"},
		Projects: []ProjectFact{
			{Title: "Academia Authenticator", Description: "AI-powered certificate verification system that detects forged academic documents", Tech: []string{"Python", "OCR", "APIs"}},
			{Title: "AI-Powered Raw Material Marketplace", Description: "full-stack marketplace for suppliers and shopkeepers with AI-assisted inventory management", Tech: []string{"React", "Node.js", "Express", "MySQL"}},
			{Title: "InternConnect Campus Portal", Description: "internship and placement portal with role-based access", Tech: []string{"PHP", "MySQL", "JavaScript"}},
			{Title: "Library Seat Management System", Description: "web system to reserve and manage library seats", Tech: []string{"PHP", "MySQL", "Bootstrap"}},
			{Title: "Resume AI Assistant", Description: "AI-driven helper that tailors resume and profile content", Tech: []string{"TypeScript", "React", "AI APIs"}},
		},
		Education: []string{
			"B.Tech in Computer Science & Engineering at JNTU Anantapur (2023-2027), specializing in Software Engineering & Cybersecurity",
			"Intermediate (MPC) at Narayana Jr College (2021-2023)",
		},
		Achievements: []string{
			"Top 4% percentile in JEE Mains 2024",
			"Selected for the prestigious NIC e-Governance internship",
			"3+ certifications in cybersecurity and ethical hacking",
			"Built and deployed 10+ full-stack web applications",
		},
	}
}

// SystemPrompt renders the knowledge base as the fixed system instruction
// for the remote engine.
func (kb KnowledgeBase) SystemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI assistant on %s's portfolio website. You know everything about him. Answer questions about him in a friendly, professional tone. Here's his info:\n\n", kb.FullName)
	fmt.Fprintf(&b, "**Personal:**\n- Full Name: %s\n- Email: %s\n- Phone: %s\n- Location: %s\n- Currently a B.Tech Computer Science student\n\n", kb.FullName, kb.Email, kb.Phone, kb.Location)
	fmt.Fprintf(&b, "**Skills:** %s\n", strings.Join(kb.Skills, ", "))
	fmt.Fprintf(&b, "**Interests:** %s\n\n", strings.Join(kb.Interests, ", "))
	fmt.Fprintf(&b, "**Experience:**\n%s\n\n", kb.Internship)
	b.WriteString("**Education:**\n")
	for _, e := range kb.Education {
		fmt.Fprintf(&b, "- %s\n", e)
	}
	b.WriteString("\n**Projects:**\n")
	for _, p := range kb.Projects {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", p.Title, p.Description, strings.Join(p.Tech, ", "))
	}
	b.WriteString("\n**Achievements:**\n")
	for _, a := range kb.Achievements {
		fmt.Fprintf(&b, "- %s\n", a)
	}
	fmt.Fprintf(&b, "\nIf asked something you don't know about him, say you don't have that specific info and suggest contacting him directly at %s.\nKeep responses concise (2-4 sentences usually). Be enthusiastic about his work.", kb.Email)
	return b.String()
}
