package roadmap

type ModuleStatus string

const (
	StatusCompleted  ModuleStatus = "completed"
	StatusInProgress ModuleStatus = "in-progress"
	StatusLocked     ModuleStatus = "locked"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

type Task struct {
	Name        string `json:"name"`
	IsCompleted bool   `json:"is_completed"`
}

type Module struct {
	ID         int          `json:"id"`
	Title      string       `json:"title"`
	Desc       string       `json:"desc"`
	Time       string       `json:"time"`
	Tasks      []Task       `json:"tasks"`
	Status     ModuleStatus `json:"status"`
	Skills     []string     `json:"skills,omitempty"`
	Difficulty Difficulty   `json:"difficulty,omitempty"`
}

type Project struct {
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Desc       string     `json:"desc"`
}

// Roadmap is canned content. Module status is authored, not derived from any
// real learner progress.
type Roadmap struct {
	Goal     string    `json:"goal"`
	Category Category  `json:"category"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Duration string    `json:"duration"`
	Tree     []string  `json:"tree"`
	Modules  []Module  `json:"modules"`
	Projects []Project `json:"projects"`
	Mistakes []string  `json:"mistakes"`
	Tips     []string  `json:"tips"`
	Advice   string    `json:"advice"`
}
