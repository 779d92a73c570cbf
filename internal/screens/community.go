package screens

import (
	"errors"
	"log"
	"sync"

	"github.com/studybuddy/studybuddy/internal/community"
)

// Community is the community page: quizzes to review, mentors and the
// help request drawer
type Community struct {
	catalog community.Catalog

	mutex    sync.RWMutex
	topic    string
	order    community.SortOrder
	query    string
	quiz     *community.Quiz
	mentor   *community.Mentor
	message  string
	toast    string
	requests []community.HelpRequest
	onUpdate func()
}

// NewCommunity creates the page over catalog
func NewCommunity(catalog community.Catalog) *Community {
	return &Community{
		catalog: catalog,
		topic:   community.AllTopics,
		order:   community.SortScoreAsc,
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Community) SetUpdateCallback(callback func()) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onUpdate = callback
}

// Topics returns the topic filter choices
func (c *Community) Topics() []string {
	return community.Topics(c.catalog.Quizzes)
}

// Topic returns the active topic filter
func (c *Community) Topic() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.topic
}

// SetTopic changes the topic filter
func (c *Community) SetTopic(topic string) {
	c.mutex.Lock()
	c.topic = topic
	c.mutex.Unlock()
	c.notify()
}

// Order returns the active sort order
func (c *Community) Order() community.SortOrder {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.order
}

// SetOrder changes the sort order
func (c *Community) SetOrder(order community.SortOrder) {
	c.mutex.Lock()
	c.order = order
	c.mutex.Unlock()
	c.notify()
}

// SetQuery narrows the list by a fuzzy title or topic match
func (c *Community) SetQuery(query string) {
	c.mutex.Lock()
	c.query = query
	c.mutex.Unlock()
	c.notify()
}

// Quizzes returns the quizzes to review under the active filters
func (c *Community) Quizzes() []community.Quiz {
	c.mutex.RLock()
	topic, order, query := c.topic, c.order, c.query
	c.mutex.RUnlock()
	return community.Search(community.Review(c.catalog.Quizzes, topic, order), query)
}

// Leaderboard returns the top mentors
func (c *Community) Leaderboard() []community.Mentor {
	return community.Leaderboard(c.catalog.Mentors)
}

// Highlights returns the community highlight lines
func (c *Community) Highlights() []string {
	return c.catalog.Highlights
}

// OpenHelp opens the help drawer for a quiz
func (c *Community) OpenHelp(quizID int) bool {
	quiz, ok := community.QuizByID(c.catalog.Quizzes, quizID)
	if !ok {
		return false
	}
	c.mutex.Lock()
	c.quiz = &quiz
	c.mentor = nil
	c.message = ""
	c.mutex.Unlock()
	c.notify()
	return true
}

// CloseHelp closes the drawer without sending
func (c *Community) CloseHelp() {
	c.mutex.Lock()
	c.quiz = nil
	c.mentor = nil
	c.message = ""
	c.mutex.Unlock()
	c.notify()
}

// HelpQuiz returns the quiz the drawer is open for
func (c *Community) HelpQuiz() (community.Quiz, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if c.quiz == nil {
		return community.Quiz{}, false
	}
	return *c.quiz, true
}

// Suggestions returns the mentors suggested for the open quiz
func (c *Community) Suggestions() []community.Mentor {
	quiz, ok := c.HelpQuiz()
	if !ok {
		return nil
	}
	return community.SuggestMentors(c.catalog.Mentors, quiz.Topic)
}

// Resources returns the study links for the open quiz
func (c *Community) Resources() []community.Resource {
	quiz, ok := c.HelpQuiz()
	if !ok {
		return nil
	}
	return community.ResourcesFor(c.catalog.Resources, quiz.Topic)
}

// SelectMentor picks one of the suggested mentors
func (c *Community) SelectMentor(id string) bool {
	mentor, ok := community.MentorByID(c.Suggestions(), id)
	if !ok {
		return false
	}
	c.mutex.Lock()
	c.mentor = &mentor
	c.mutex.Unlock()
	c.notify()
	return true
}

// SelectedMentor returns the chosen mentor
func (c *Community) SelectedMentor() (community.Mentor, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if c.mentor == nil {
		return community.Mentor{}, false
	}
	return *c.mentor, true
}

// SetMessage updates the question text
func (c *Community) SetMessage(message string) {
	c.mutex.Lock()
	c.message = message
	c.mutex.Unlock()
	c.notify()
}

// CanSend reports whether the request is complete
func (c *Community) CanSend() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	_, err := community.NewHelpRequest(c.quiz, c.mentor, c.message)
	return err == nil
}

// SendHelp records the help request, closes the drawer and sets the toast
func (c *Community) SendHelp() (string, error) {
	c.mutex.Lock()
	req, err := community.NewHelpRequest(c.quiz, c.mentor, c.message)
	if err != nil {
		c.mutex.Unlock()
		switch {
		case errors.Is(err, community.ErrNoMentor):
			return "", invalid(MsgMentorNeeded)
		case errors.Is(err, community.ErrEmptyMessage):
			return "", invalid(MsgMessageNeeded)
		}
		return "", invalid(err.Error())
	}
	toast := community.Toast(*c.mentor, *c.quiz)
	c.requests = append(c.requests, req)
	c.toast = toast
	c.quiz = nil
	c.mentor = nil
	c.message = ""
	c.mutex.Unlock()

	log.Printf("Help request %s for quiz %d sent to %s", req.ID, req.QuizID, req.MentorID)
	c.notify()
	return toast, nil
}

// Toast returns the confirmation currently shown
func (c *Community) Toast() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.toast
}

// DismissToast hides the confirmation
func (c *Community) DismissToast() {
	c.mutex.Lock()
	c.toast = ""
	c.mutex.Unlock()
	c.notify()
}

// Requests returns the help requests sent from this page
func (c *Community) Requests() []community.HelpRequest {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	out := make([]community.HelpRequest, len(c.requests))
	copy(out, c.requests)
	return out
}

func (c *Community) notify() {
	c.mutex.RLock()
	callback := c.onUpdate
	c.mutex.RUnlock()
	if callback != nil {
		callback()
	}
}
