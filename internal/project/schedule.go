package project

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/reeltune/reeltune/internal/model"
)

// PostStatus tracks a scheduled post through its lifecycle
type PostStatus string

const (
	StatusPlanned PostStatus = "planned"
	StatusReady   PostStatus = "ready"
	StatusPosted  PostStatus = "posted"
)

// ScheduledPost is one planned piece of content on the calendar
type ScheduledPost struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	ContentType model.ContentType `json:"content_type"`
	PluginName  string            `json:"plugin_name,omitempty"`
	Title       string            `json:"title"`
	Notes       string            `json:"notes,omitempty"`
	Status      PostStatus        `json:"status"`
	AssetIDs    []string          `json:"asset_ids,omitempty"`
}

// Schedule is the project's content calendar
type Schedule struct {
	posts map[string]*ScheduledPost
}

// NewSchedule creates an empty schedule
func NewSchedule() *Schedule {
	return &Schedule{posts: make(map[string]*ScheduledPost)}
}

// Add inserts a post, assigning an ID and the planned status when absent,
// and returns it.
func (s *Schedule) Add(post *ScheduledPost) *ScheduledPost {
	if post.ID == "" {
		post.ID = newPostID()
	}
	if post.Status == "" {
		post.Status = StatusPlanned
	}
	s.posts[post.ID] = post
	return post
}

// Get returns a post by ID
func (s *Schedule) Get(id string) (*ScheduledPost, bool) {
	p, ok := s.posts[id]
	return p, ok
}

// Remove deletes a post by ID
func (s *Schedule) Remove(id string) bool {
	if _, ok := s.posts[id]; !ok {
		return false
	}
	delete(s.posts, id)
	return true
}

// SetStatus updates a post's lifecycle status
func (s *Schedule) SetStatus(id string, status PostStatus) bool {
	p, ok := s.posts[id]
	if !ok {
		return false
	}
	p.Status = status
	return true
}

// All returns every post ordered by date, then by ID for a stable order
// within a day.
func (s *Schedule) All() []*ScheduledPost {
	out := make([]*ScheduledPost, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of scheduled posts
func (s *Schedule) Len() int {
	return len(s.posts)
}

// PostsOn returns the posts falling on the given calendar day
func (s *Schedule) PostsOn(day time.Time) []*ScheduledPost {
	y, m, d := day.Date()
	var out []*ScheduledPost
	for _, p := range s.All() {
		py, pm, pd := p.Date.Date()
		if py == y && pm == m && pd == d {
			out = append(out, p)
		}
	}
	return out
}

// PostsBetween returns the posts with from <= date < to
func (s *Schedule) PostsBetween(from, to time.Time) []*ScheduledPost {
	var out []*ScheduledPost
	for _, p := range s.All() {
		if !p.Date.Before(from) && p.Date.Before(to) {
			out = append(out, p)
		}
	}
	return out
}

// load replaces the schedule content from deserialized project data
func (s *Schedule) load(posts []*ScheduledPost) {
	s.posts = make(map[string]*ScheduledPost, len(posts))
	for _, p := range posts {
		if p == nil || p.ID == "" {
			continue
		}
		s.posts[p.ID] = p
	}
}

func newPostID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
