package domain

// Activity is one "what's keeping me busy" entry on the profile.
type Activity struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
}

type Profile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Introduction string     `json:"introduction"`
	ProfileImage string     `json:"profileImage"`
	CurrentWork  []Activity `json:"currentWork"`
	Bio          string     `json:"bio,omitempty"`
	Email        string     `json:"email,omitempty"`
	Location     string     `json:"location,omitempty"`
	GitHub       string     `json:"github,omitempty"`
	LinkedIn     string     `json:"linkedin,omitempty"`
	ResumeURL    string     `json:"resumeUrl,omitempty"`
}

type Experience struct {
	ID          string  `json:"id"`
	Company     string  `json:"workCompany"`
	Title       string  `json:"workTitle"`
	StartDate   string  `json:"workStartDate"`
	EndDate     *string `json:"workEndDate"` // nil means ongoing
	Description string  `json:"workDescription"`
}

// Ongoing reports whether the position has no end date.
func (e Experience) Ongoing() bool {
	return e.EndDate == nil
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	GitHub       string   `json:"github"`
}

type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Platform    Platform `json:"platform"`
	ReadingTime string   `json:"readingTime,omitempty"`
}
