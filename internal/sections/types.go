package sections

// Collection item types. JSON tags match the stored document shape exactly,
// so documents written by earlier versions of the site remain readable.

// Project is one portfolio project card.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tech        []string `json:"tech"`
	GithubURL   string   `json:"github_url"`
	DemoURL     string   `json:"demo_url"`
}

func (p Project) ItemID() string { return p.ID }

// Experience is one work or volunteering entry on the timeline.
type Experience struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Organization   string   `json:"organization"`
	Period         string   `json:"period"`
	Location       string   `json:"location"`
	Points         []string `json:"points"`
	Type           string   `json:"type"`
	CertificateURL string   `json:"certificateUrl,omitempty"`
}

func (e Experience) ItemID() string { return e.ID }

// Education is one education entry.
type Education struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Period       string `json:"period"`
	Detail       string `json:"detail"`
}

func (e Education) ItemID() string { return e.ID }

// Certification is one certification card.
type Certification struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date"`
	CredentialURL string `json:"credentialUrl"`
}

func (c Certification) ItemID() string { return c.ID }

// Achievement is one achievement badge.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (a Achievement) ItemID() string { return a.ID }

// SkillBar is one named proficiency bar. Level is always within [0, 100];
// the editor clamps on every write.
type SkillBar struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

func (s SkillBar) ItemID() string { return s.ID }

// TechStackEntry is one technology tile in the tech grid.
type TechStackEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t TechStackEntry) ItemID() string { return t.ID }

// Highlight is one about-section highlight card.
type Highlight struct {
	ID        string `json:"id"`
	Icon      string `json:"icon"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Stat      string `json:"stat"`
	StatLabel string `json:"statLabel"`
}

func (h Highlight) ItemID() string { return h.ID }
