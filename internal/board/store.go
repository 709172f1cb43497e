package board

import (
	"sync"
	"time"

	"github.com/RJD02/life-quest/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultActivityCapacity bounds the activity log when no capacity is
// configured.
const DefaultActivityCapacity = 1000

// DefaultActor is the user id recorded on activity entries when no actor is
// configured. The board assumes a single logical writer.
const DefaultActor = "local-user"

// Store owns all canonical board collections: folders, projects, task lists,
// tasks, comments, the activity log, and the sidebar expansion set. Every
// command runs to completion under one mutex; consumers only ever receive
// copies, so nothing outside the store can bypass the cascade/log/persist
// pipeline.
type Store struct {
	mu sync.Mutex

	folders  []model.Folder
	projects []model.Project
	lists    []model.TaskList
	tasks    []model.Task
	comments []model.TaskComment

	// activity is kept newest-first and truncated at capacity.
	activity []model.ActivityEntry
	capacity int
	subs     []func(model.ActivityEntry)

	expanded IDSet

	actor    string
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
	onChange func()
}

// Options configures a Store. Zero-value fields fall back to defaults; Now
// and NewID exist so tests can pin timestamps and ids.
type Options struct {
	ActivityCapacity int
	Actor            string
	Logger           zerolog.Logger
	Now              func() time.Time
	NewID            func() string

	// OnChange is invoked after every mutation that alters persisted state.
	// The persistence adapter uses it to schedule snapshot saves.
	OnChange func()
}

// New creates an empty store.
func New(opts Options) *Store {
	s := &Store{
		capacity: opts.ActivityCapacity,
		actor:    opts.Actor,
		log:      opts.Logger,
		now:      opts.Now,
		newID:    opts.NewID,
		onChange: opts.OnChange,
		expanded: NewIDSet(),
	}
	if s.capacity <= 0 {
		s.capacity = DefaultActivityCapacity
	}
	if s.actor == "" {
		s.actor = DefaultActor
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// State is the serializable snapshot of the board. The activity log and any
// transient selection state are deliberately excluded; the expansion set is
// carried as an ordered array.
type State struct {
	Folders           []model.Folder      `json:"folders"`
	Projects          []model.Project     `json:"projects"`
	TaskLists         []model.TaskList    `json:"taskLists"`
	Tasks             []model.Task        `json:"tasks"`
	Comments          []model.TaskComment `json:"comments"`
	ExpandedFolderIDs []string            `json:"expandedFolderIds"`
}

// Export returns a deep copy of the persistable state.
func (s *Store) Export() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Folders:           make([]model.Folder, len(s.folders)),
		Projects:          append([]model.Project(nil), s.projects...),
		TaskLists:         append([]model.TaskList(nil), s.lists...),
		Tasks:             make([]model.Task, len(s.tasks)),
		Comments:          append([]model.TaskComment(nil), s.comments...),
		ExpandedFolderIDs: s.expanded.ToArray(),
	}
	for i := range s.folders {
		st.Folders[i] = cloneFolder(s.folders[i])
	}
	for i := range s.tasks {
		st.Tasks[i] = cloneTask(s.tasks[i])
	}
	return st
}

// Restore replaces the store's collections with the given state. It is used
// once at startup, after the persistence adapter has loaded a snapshot.
func (s *Store) Restore(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.folders = make([]model.Folder, len(st.Folders))
	for i := range st.Folders {
		s.folders[i] = cloneFolder(st.Folders[i])
	}
	s.projects = append([]model.Project(nil), st.Projects...)
	s.lists = append([]model.TaskList(nil), st.TaskLists...)
	s.tasks = make([]model.Task, len(st.Tasks))
	for i := range st.Tasks {
		s.tasks[i] = cloneTask(st.Tasks[i])
	}
	s.comments = append([]model.TaskComment(nil), st.Comments...)
	s.expanded = IDSetFromArray(st.ExpandedFolderIDs)
}

// changed notifies the persistence hook. Callers must hold the mutex.
func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Lookup helpers. The returned pointers alias the canonical slices and must
// only be used while the mutex is held.

func (s *Store) folderAt(id string) *model.Folder {
	for i := range s.folders {
		if s.folders[i].ID == id {
			return &s.folders[i]
		}
	}
	return nil
}

func (s *Store) projectAt(id string) *model.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i]
		}
	}
	return nil
}

func (s *Store) listAt(id string) *model.TaskList {
	for i := range s.lists {
		if s.lists[i].ID == id {
			return &s.lists[i]
		}
	}
	return nil
}

func (s *Store) taskAt(id string) *model.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

func (s *Store) commentAt(id string) *model.TaskComment {
	for i := range s.comments {
		if s.comments[i].ID == id {
			return &s.comments[i]
		}
	}
	return nil
}

// Cascading lastModified propagation (task -> project -> folder). Callers
// must hold the mutex.

func (s *Store) touchFolderLocked(id string, t time.Time) {
	f := s.folderAt(id)
	if f == nil {
		s.log.Warn().Str("folder_id", id).Msg("lastModified cascade hit unknown folder")
		return
	}
	f.LastModified = t
}

func (s *Store) touchProjectLocked(id string, t time.Time) {
	p := s.projectAt(id)
	if p == nil {
		s.log.Warn().Str("project_id", id).Msg("lastModified cascade hit unknown project")
		return
	}
	p.LastModified = t
	s.touchFolderLocked(p.FolderID, t)
}

// Denormalized counter maintenance. The cached counts are recomputed from
// canonical collections after every mutation that can change them.

func (s *Store) recountFolderLocked(folderID string) {
	f := s.folderAt(folderID)
	if f == nil {
		return
	}
	n := 0
	for i := range s.projects {
		if s.projects[i].FolderID == folderID {
			n++
		}
	}
	f.ProjectCount = n
}

func (s *Store) recountProjectLocked(projectID string) {
	p := s.projectAt(projectID)
	if p == nil {
		return
	}
	total, done := 0, 0
	for i := range s.tasks {
		if s.tasks[i].ProjectID != projectID {
			continue
		}
		total++
		if s.tasks[i].Status == model.StatusDone {
			done++
		}
	}
	p.TaskCount = total
	p.CompletedTaskCount = done
}

func (s *Store) recountListLocked(listID string) {
	l := s.listAt(listID)
	if l == nil {
		return
	}
	n := 0
	for i := range s.tasks {
		if s.tasks[i].ListID == listID {
			n++
		}
	}
	l.TaskCount = n
}

func cloneFolder(f model.Folder) model.Folder {
	f.Path = append([]string(nil), f.Path...)
	return f
}

func cloneTask(t model.Task) model.Task {
	t.Labels = append([]string(nil), t.Labels...)
	if t.StoryPoints != nil {
		sp := *t.StoryPoints
		t.StoryPoints = &sp
	}
	if t.BlockedFrom != nil {
		bf := *t.BlockedFrom
		t.BlockedFrom = &bf
	}
	return t
}
