// Package content holds the fixed records every section renders from.
package content

type Profile struct {
	Name       string
	Headline   string
	Location   string
	About      string
	ResumePath string
}

type NavItem struct {
	Label  string
	Target string
}

type ContactInfoEntry struct {
	Icon  string
	Label string
	Value string
	Href  string
}

type Skill struct {
	Category string
	Items    []string
}

type Experience struct {
	Role      string
	Company   string
	StartDate string
	EndDate   string
	Logo      string
	Bullets   []string
}

type Project struct {
	Title   string
	Summary string
	Stack   []string
	Link    string
}

type Certification struct {
	Name       string
	Issuer     string
	Date       string
	Credential string
}

type Education struct {
	Degree      string
	Institution string
	StartDate   string
	EndDate     string
	Logo        string
	Bullets     []string
}

// Section anchors, in page order.
const (
	SectionHome           = "home"
	SectionAbout          = "about"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionEducation      = "education"
	SectionContact        = "contact"
)

var Me = Profile{
	Name:     "Zach Kordas-Potter",
	Headline: "Software Engineer",
	Location: "Minneapolis, MN",
	About: `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.
Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
different language, experimenting with tools, or solving tricky problems.
When I'm not coding, you'll usually find me training Muay Thai, shooting pool with friends,
or chasing down a new challenge outside the screen.`,
	ResumePath: "/static/resume.pdf",
}

var Navigation = []NavItem{
	{Label: "Home", Target: SectionHome},
	{Label: "About", Target: SectionAbout},
	{Label: "Skills", Target: SectionSkills},
	{Label: "Experience", Target: SectionExperience},
	{Label: "Projects", Target: SectionProjects},
	{Label: "Certifications", Target: SectionCertifications},
	{Label: "Education", Target: SectionEducation},
	{Label: "Contact", Target: SectionContact},
}

var ContactInfo = []ContactInfoEntry{
	{Icon: "mail", Label: "Email", Value: "zachkordaspotter@gmail.com", Href: "mailto:zachkordaspotter@gmail.com"},
	{Icon: "phone", Label: "Phone", Value: "+1 (612) 555-0142", Href: "tel:+16125550142"},
	{Icon: "github", Label: "GitHub", Value: "github.com/Zachkp", Href: "https://github.com/Zachkp"},
	{Icon: "linkedin", Label: "LinkedIn", Value: "linkedin.com/in/zachkp", Href: "https://www.linkedin.com/in/zachkp"},
}

var Skills = []Skill{
	{Category: "Languages", Items: []string{"Go", "Python", "JavaScript", "SQL", "Bash"}},
	{Category: "Web", Items: []string{"Gin", "HTMX", "Tailwind CSS", "Alpine.js"}},
	{Category: "Data", Items: []string{"SQLite", "PostgreSQL", "pandas", "scikit-learn"}},
	{Category: "Tooling", Items: []string{"Docker", "Git", "Linux", "CI/CD"}},
}

var WorkHistory = []Experience{
	{
		Role:      "Presentation Expert",
		Company:   "Target",
		StartDate: "Aug 2023",
		EndDate:   "Present",
		Logo:      "/static/logos/target.svg",
		Bullets: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
			"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
		},
	},
	{
		Role:      "Manager",
		Company:   "Jasons Catered Events",
		StartDate: "Aug 2016",
		EndDate:   "Present",
		Logo:      "/static/logos/jasons.svg",
		Bullets: []string{
			"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays",
			"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime",
		},
	},
}

var Projects = []Project{
	{
		Title:   "Terminal Mail",
		Summary: "A terminal-based email client built in Go with fuzzyfinder capabilities using the Charmbracelet TUI framework and go-imap.",
		Stack:   []string{"Go", "Bubble Tea", "go-imap"},
		Link:    "https://github.com/Zachkp",
	},
	{
		Title:   "TUI Music",
		Summary: "A terminal music streaming application with a TUI interface, using yt-dlp and mpv for YouTube Music playback from the command line.",
		Stack:   []string{"Go", "yt-dlp", "mpv"},
		Link:    "https://github.com/Zachkp",
	},
	{
		Title:   "Game Recommender",
		Summary: "A web application that recommends games from TF-IDF vectors and cosine similarity, with interactive visualizations and filtering by reviews and ratings.",
		Stack:   []string{"Python", "scikit-learn", "Flask"},
		Link:    "https://github.com/Zachkp",
	},
	{
		Title:   "Portfolio",
		Summary: "This site: Go and Gin on the server, HTMX for the contact form, styled with Tailwind CSS.",
		Stack:   []string{"Go", "Gin", "HTMX", "Tailwind CSS"},
		Link:    "https://github.com/Zachkp",
	},
}

var Certifications = []Certification{
	{Name: "Project+", Issuer: "CompTIA", Date: "July 2022", Credential: "SRRRPGBSWBRQCCDJ"},
	{Name: "ITIL 4 Foundation", Issuer: "Axelos", Date: "Jan 2022"},
}

var Schooling = []Education{
	{
		Degree:      "Bachelor of Computer Science",
		Institution: "Western Governors University",
		StartDate:   "Sept 2019",
		EndDate:     "May 2023",
		Logo:        "/static/logos/wgu.svg",
		Bullets: []string{
			"Graduated Magna Cum Laude with 3.8 GPA",
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: Machine Learning recommendation system",
		},
	},
}
