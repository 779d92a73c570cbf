package screens

import (
	"context"
	"log"
	"sync"

	"github.com/samber/lo"
	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/fetch"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/platform"
)

// Section is a tab of the contents screen
type Section string

const (
	SectionSummary    Section = "SUMMARY"
	SectionFlashcards Section = "FLASHCARDS"
	SectionQuiz       Section = "QUIZ"
)

// Contents is the per-course viewer of summaries, flashcards and quizzes
type Contents struct {
	client   api.Client
	courseID int

	course     *fetch.Resource[int, model.Course]
	summaries  *fetch.Resource[model.SummaryKey, model.Summary]
	flashcards *fetch.Resource[int, model.FlashcardSet]
	past       *fetch.Resource[int, []model.PastQuiz]
	detail     *fetch.Resource[int, model.QuizDetail]

	Quiz   *QuizRunner
	Speech *Speech

	mutex             sync.RWMutex
	section           Section
	length            model.SummaryLength
	generatingSummary bool
	summaryErr        string
	generatingCards   bool
	cardsErr          string
	openQuizID        int
	onUpdate          func()
}

// NewContents creates the contents screen of a course
func NewContents(client api.Client, courseID int, length model.SummaryLength) *Contents {
	if _, ok := model.ParseSummaryLength(string(length)); !ok {
		length = model.DefaultSummaryLength
	}

	c := &Contents{
		client:   client,
		courseID: courseID,
		section:  SectionSummary,
		length:   length,
		course: fetch.New("course", func(ctx context.Context, id int) (model.Course, error) {
			return client.GetCourse(ctx, id)
		}),
		summaries: fetch.New("summary", func(ctx context.Context, key model.SummaryKey) (model.Summary, error) {
			summary, err := client.GetSummary(ctx, key.CourseID, key.Length)
			summary.Text = platform.CleanSummary(summary.Text)
			return summary, err
		}),
		flashcards: fetch.New("flashcards", func(ctx context.Context, id int) (model.FlashcardSet, error) {
			cards, err := client.GetFlashcards(ctx, id)
			if err != nil {
				return model.FlashcardSet{}, err
			}
			cleaned := lo.Map(cards, func(card model.Flashcard, _ int) model.Flashcard {
				card.Front = platform.CleanText(card.Front)
				card.Back = platform.CleanText(card.Back)
				return card
			})
			var set model.FlashcardSet
			set.Replace(cleaned)
			return set, nil
		}),
		past: fetch.New("past quizzes", func(ctx context.Context, id int) ([]model.PastQuiz, error) {
			return client.ListQuizzes(ctx, id)
		}),
		detail: fetch.New("quiz detail", func(ctx context.Context, id int) (model.QuizDetail, error) {
			return client.GetQuiz(ctx, id)
		}),
	}

	c.Quiz = NewQuizRunner(client, courseID)
	c.Speech = NewSpeech(client)

	c.course.SetUpdateCallback(func(fetch.State[int, model.Course]) { c.notify() })
	c.summaries.SetUpdateCallback(func(fetch.State[model.SummaryKey, model.Summary]) { c.notify() })
	c.flashcards.SetUpdateCallback(func(fetch.State[int, model.FlashcardSet]) { c.notify() })
	c.past.SetUpdateCallback(func(fetch.State[int, []model.PastQuiz]) { c.notify() })
	c.detail.SetUpdateCallback(func(fetch.State[int, model.QuizDetail]) { c.notify() })
	c.Quiz.SetUpdateCallback(c.notify)
	c.Speech.SetUpdateCallback(c.notify)
	return c
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Contents) SetUpdateCallback(callback func()) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onUpdate = callback
}

// CourseID returns the course shown
func (c *Contents) CourseID() int {
	return c.courseID
}

// Open loads the course header and the summary of the current length
func (c *Contents) Open(ctx context.Context) {
	c.course.Attach(ctx, c.courseID)
	c.summaries.Attach(ctx, c.summaryKey())
}

// CourseName returns the course name, or "" while unknown
func (c *Contents) CourseName() string {
	return c.course.State().Value.Name
}

// CourseError returns the course header error message
func (c *Contents) CourseError() string {
	if c.course.State().Status == model.FetchStatusError {
		return MsgCourseFailed
	}
	return ""
}

// Section returns the active tab
func (c *Contents) Section() Section {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.section
}

// ShowSection switches tabs, loading what the tab needs the first time
func (c *Contents) ShowSection(ctx context.Context, section Section) {
	c.mutex.Lock()
	c.section = section
	c.mutex.Unlock()
	c.notify()

	switch section {
	case SectionSummary:
		c.summaries.Select(ctx, c.summaryKey())
	case SectionFlashcards:
		c.flashcards.Select(ctx, c.courseID)
	case SectionQuiz:
		c.past.Select(ctx, c.courseID)
	}
}

func (c *Contents) summaryKey() model.SummaryKey {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return model.SummaryKey{CourseID: c.courseID, Length: c.length}
}

// SummaryLength returns the selected summary variant
func (c *Contents) SummaryLength() model.SummaryLength {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.length
}

// SelectSummaryLength switches the variant. A cached variant is shown
// without a request. A slower response for the previous variant only
// fills its own cache entry.
func (c *Contents) SelectSummaryLength(ctx context.Context, length model.SummaryLength) {
	c.mutex.Lock()
	c.length = length
	c.summaryErr = ""
	c.mutex.Unlock()
	c.summaries.Select(ctx, c.summaryKey())
}

// ReloadSummary refetches the selected variant
func (c *Contents) ReloadSummary(ctx context.Context) {
	c.summaries.Reload(ctx, c.summaryKey())
}

// Summary returns the fetch state of the selected variant
func (c *Contents) Summary() fetch.State[model.SummaryKey, model.Summary] {
	return c.summaries.StateOf(c.summaryKey())
}

// SummaryError returns the summary message to show, if any
func (c *Contents) SummaryError() string {
	c.mutex.RLock()
	genErr := c.summaryErr
	c.mutex.RUnlock()
	if genErr != "" {
		return genErr
	}
	if c.Summary().Status == model.FetchStatusError {
		return MsgSummaryFailed
	}
	return ""
}

// GeneratingSummary reports whether a summary generate is in flight
func (c *Contents) GeneratingSummary() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.generatingSummary
}

// GenerateSummary asks the backend for a new summary of the selected
// length and then fetches it
func (c *Contents) GenerateSummary(ctx context.Context) error {
	c.mutex.Lock()
	if c.generatingSummary {
		c.mutex.Unlock()
		return ErrBusy
	}
	c.generatingSummary = true
	c.summaryErr = ""
	key := model.SummaryKey{CourseID: c.courseID, Length: c.length}
	c.mutex.Unlock()
	c.notify()

	err := c.client.GenerateSummary(ctx, key.CourseID, key.Length)
	if err == nil {
		if st := c.summaries.Reload(ctx, key); st.Err != nil {
			err = st.Err
		}
	}

	c.mutex.Lock()
	c.generatingSummary = false
	if err != nil {
		c.summaryErr = MsgSummaryGenerateFailed
	}
	c.mutex.Unlock()
	c.notify()

	if err != nil {
		log.Printf("Summary generation failed for course %d: %v", c.courseID, err)
		return failed(MsgSummaryGenerateFailed, err)
	}
	return nil
}

// Flashcards returns the fetch state of the card set
func (c *Contents) Flashcards() fetch.State[int, model.FlashcardSet] {
	return c.flashcards.StateOf(c.courseID)
}

// FlashcardsError returns the flashcard message to show, if any
func (c *Contents) FlashcardsError() string {
	c.mutex.RLock()
	genErr := c.cardsErr
	c.mutex.RUnlock()
	if genErr != "" {
		return genErr
	}
	if c.Flashcards().Status == model.FetchStatusError {
		return MsgFlashcardsFailed
	}
	return ""
}

// ReloadFlashcards refetches the card set
func (c *Contents) ReloadFlashcards(ctx context.Context) {
	c.flashcards.Reload(ctx, c.courseID)
}

// FlipCard toggles the face of card i. It reports false when the card
// does not exist.
func (c *Contents) FlipCard(i int) bool {
	flipped := false
	c.flashcards.Update(c.courseID, func(set *model.FlashcardSet) {
		flipped = set.Toggle(i)
	})
	return flipped
}

// GeneratingFlashcards reports whether a flashcard generate is in flight
func (c *Contents) GeneratingFlashcards() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.generatingCards
}

// GenerateFlashcards replaces the card set with a freshly generated one
func (c *Contents) GenerateFlashcards(ctx context.Context) error {
	c.mutex.Lock()
	if c.generatingCards {
		c.mutex.Unlock()
		return ErrBusy
	}
	c.generatingCards = true
	c.cardsErr = ""
	c.mutex.Unlock()
	c.notify()

	err := c.client.GenerateFlashcards(ctx, c.courseID)
	if err == nil {
		if st := c.flashcards.Reload(ctx, c.courseID); st.Err != nil {
			err = st.Err
		}
	}

	c.mutex.Lock()
	c.generatingCards = false
	if err != nil {
		c.cardsErr = MsgFlashcardsGenFailed
	}
	c.mutex.Unlock()
	c.notify()

	if err != nil {
		log.Printf("Flashcard generation failed for course %d: %v", c.courseID, err)
		return failed(MsgFlashcardsGenFailed, err)
	}
	return nil
}

// PastQuizzes returns the fetch state of the past quiz list
func (c *Contents) PastQuizzes() fetch.State[int, []model.PastQuiz] {
	return c.past.StateOf(c.courseID)
}

// PastQuizzesError returns the past quiz message to show, if any
func (c *Contents) PastQuizzesError() string {
	if c.PastQuizzes().Status == model.FetchStatusError {
		return MsgPastQuizzesFailed
	}
	return ""
}

// ReloadPastQuizzes refetches the past quiz list
func (c *Contents) ReloadPastQuizzes(ctx context.Context) {
	c.past.Reload(ctx, c.courseID)
}

// OpenPastQuiz loads the review of a past quiz
func (c *Contents) OpenPastQuiz(ctx context.Context, quizID int) {
	c.mutex.Lock()
	c.openQuizID = quizID
	c.mutex.Unlock()
	c.detail.Attach(ctx, quizID)
}

// ClosePastQuiz hides the review
func (c *Contents) ClosePastQuiz() {
	c.mutex.Lock()
	c.openQuizID = 0
	c.mutex.Unlock()
	c.notify()
}

// PastQuizDetail returns the review of the open past quiz. ok is false
// when none is open.
func (c *Contents) PastQuizDetail() (st fetch.State[int, model.QuizDetail], ok bool) {
	c.mutex.RLock()
	id := c.openQuizID
	c.mutex.RUnlock()
	if id == 0 {
		return st, false
	}
	return c.detail.StateOf(id), true
}

// PastQuizDetailError returns the review message to show, if any
func (c *Contents) PastQuizDetailError() string {
	if st, ok := c.PastQuizDetail(); ok && st.Status == model.FetchStatusError {
		return MsgQuizDetailFailed
	}
	return ""
}

// GenerateQuiz starts a new quiz for the course
func (c *Contents) GenerateQuiz(ctx context.Context) error {
	return c.Quiz.Generate(ctx)
}

// SubmitQuiz submits the running quiz and refreshes the past quiz list
// once it is scored
func (c *Contents) SubmitQuiz(ctx context.Context) error {
	if err := c.Quiz.Submit(ctx); err != nil {
		return err
	}
	c.past.Reload(ctx, c.courseID)
	return nil
}

// Listen reads the selected summary aloud. It returns the saved audio path.
func (c *Contents) Listen(ctx context.Context, language, dir string) (string, error) {
	st := c.Summary()
	if !st.Loaded() || st.Value.IsEmpty() {
		return "", c.Speech.reject(invalid(MsgNothingToRead))
	}
	title := c.CourseName()
	if title == "" {
		title = "summary"
	}
	return c.Speech.Speak(ctx, st.Value.Text, language, dir, title+" "+string(st.Value.Length))
}

func (c *Contents) notify() {
	c.mutex.RLock()
	callback := c.onUpdate
	c.mutex.RUnlock()
	if callback != nil {
		callback()
	}
}
