package entity

// PopularQuestion is one entry of the home view's most-asked list.
type PopularQuestion struct {
	Id       string `json:"id"`
	Question string `json:"question"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PresetRoute bundles a set of starter questions for one banking domain.
type PresetRoute struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Questions   []string `json:"questions"`
}

// ChatModeInfo describes one selectable interaction mode.
type ChatModeInfo struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
