package taskcategory

// TaskCategory is a named template group of reusable task descriptions.
// Tasks instantiated from a template are copied by value; editing the
// template never touches shifts created from it.
type TaskCategory struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Tasks []string `json:"tasks"`
}
