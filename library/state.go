package library

// State is the serialized aggregate written to the data file: the item
// list, the three derived indices, the task list, and both history
// stacks. List order is preserved; index buckets are stored as sorted
// id slices.
type State struct {
	Items          []Item              `json:"items"`
	KeywordIndex   map[string][]string `json:"keyword_index"`
	TagFrequency   map[string]int      `json:"tag_frequency"`
	PathIndex      map[string]string   `json:"path_index"`
	Tasks          []Task              `json:"tasks"`
	RecentlyViewed []string            `json:"recently_viewed"`
	UndoHistory    []Memento           `json:"undo_history"`
}

// NewState returns an empty state with initialized maps.
func NewState() *State {
	return &State{
		KeywordIndex: make(map[string][]string),
		TagFrequency: make(map[string]int),
		PathIndex:    make(map[string]string),
	}
}

// normalize initializes any nil maps after deserialization.
func (st *State) normalize() {
	if st.KeywordIndex == nil {
		st.KeywordIndex = make(map[string][]string)
	}
	if st.TagFrequency == nil {
		st.TagFrequency = make(map[string]int)
	}
	if st.PathIndex == nil {
		st.PathIndex = make(map[string]string)
	}
}
