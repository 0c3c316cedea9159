package models

type Badge struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Tier  string `json:"tier"`
}

type MenuItem struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Path  string `json:"path,omitempty"`
}

// Profile is the employee's "Perfil Digital".
type Profile struct {
	FirstName string     `json:"firstName"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Company   string     `json:"company"`
	Location  string     `json:"location"`
	TeamSize  int        `json:"teamSize"`
	Menu      []MenuItem `json:"menu"`
	Badges    []Badge    `json:"badges"`
	Quotes    []string   `json:"quotes"`
}

// Activity is an entry of an "Actividad Reciente" feed.
type Activity struct {
	Icon  string `json:"icon"`
	Tone  string `json:"tone"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}

// Milestone is the coin track from hiring to the reward date.
type Milestone struct {
	Title    string `json:"title"`
	Progress int    `json:"progress"`
	From     string `json:"from"`
	To       string `json:"to"`
}
