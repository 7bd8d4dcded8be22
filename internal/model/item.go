package model

// Item is one catalog entry. Scores and Comments only ever grow.
type Item struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Category string   `json:"category" yaml:"category"`
	Year     int      `json:"year" yaml:"year"`
	ImageRef string   `json:"image" yaml:"image"`
	Scores   []int    `json:"scores" yaml:"scores"`
	Comments []string `json:"comments" yaml:"comments"`
}

// Clone returns a copy that shares no slices with it.
func (it Item) Clone() Item {
	out := it
	out.Scores = append([]int(nil), it.Scores...)
	out.Comments = append([]string(nil), it.Comments...)
	return out
}
