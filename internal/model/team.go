package model

// Team member roles.
const (
	RoleArchitect    = "arquitecto"
	RoleCollaborator = "colaborador"
)

// TeamMember is one person shown on the about page.
type TeamMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"nombre"`
	Role      string `json:"rol"`
	ImageURL  string `json:"imagen,omitempty"`
	SortOrder int    `json:"-"`
	Active    bool   `json:"-"`
}

// TeamSection holds the group photo for the about page. Only the newest
// active row is served.
type TeamSection struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imagen_grupal,omitempty"`
	Active   bool   `json:"-"`
}

// TeamPage is the about-page projection served to the frontend.
type TeamPage struct {
	GroupImage    string        `json:"imagen_grupal,omitempty"`
	Architects    []*TeamMember `json:"arquitectos"`
	Collaborators []*TeamMember `json:"colaboradores"`
}
