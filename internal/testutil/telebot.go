package testutil

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context that records what handlers send.
// Methods it does not override panic through the nil embedded Context.
type FakeContext struct {
	tele.Context

	User       *tele.User
	Msg        string
	CallbackQ  *tele.Callback
	InlineQ    *tele.Query
	EditErr    error
	SendErr    error
	mu         sync.Mutex
	sent       []interface{}
	edited     []interface{}
	responses  []*tele.CallbackResponse
	answers    []*tele.QueryResponse
	lastText   string
	lastMarkup *tele.ReplyMarkup
}

// NewTextContext returns a context for a text message from userID
func NewTextContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID, Username: "tester"},
		Msg:  text,
	}
}

// NewCallbackContext returns a context for an inline button press
func NewCallbackContext(userID int64, data string) *FakeContext {
	return &FakeContext{
		User:      &tele.User{ID: userID, Username: "tester"},
		CallbackQ: &tele.Callback{ID: "cb", Data: data},
	}
}

// NewQueryContext returns a context for an inline mode query
func NewQueryContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:    &tele.User{ID: userID, Username: "tester"},
		InlineQ: &tele.Query{ID: "q", Text: text},
	}
}

func (c *FakeContext) Sender() *tele.User        { return c.User }
func (c *FakeContext) Recipient() tele.Recipient { return c.User }
func (c *FakeContext) Text() string              { return c.Msg }
func (c *FakeContext) Callback() *tele.Callback  { return c.CallbackQ }
func (c *FakeContext) Query() *tele.Query        { return c.InlineQ }

func (c *FakeContext) Data() string {
	if c.CallbackQ != nil {
		return c.CallbackQ.Data
	}
	return ""
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SendErr != nil {
		return c.SendErr
	}
	c.sent = append(c.sent, what)
	c.record(what, opts)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.EditErr != nil {
		return c.EditErr
	}
	c.edited = append(c.edited, what)
	c.record(what, opts)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(resp) == 0 {
		c.responses = append(c.responses, &tele.CallbackResponse{})
		return nil
	}
	c.responses = append(c.responses, resp...)
	return nil
}

func (c *FakeContext) Answer(resp *tele.QueryResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers = append(c.answers, resp)
	return nil
}

func (c *FakeContext) record(what interface{}, opts []interface{}) {
	if s, ok := what.(string); ok {
		c.lastText = s
	}
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			c.lastMarkup = m
		}
	}
}

// Sent returns everything passed to Send
func (c *FakeContext) Sent() []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]interface{}(nil), c.sent...)
}

// Edited returns everything passed to Edit
func (c *FakeContext) Edited() []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]interface{}(nil), c.edited...)
}

// Responses returns the callback responses
func (c *FakeContext) Responses() []*tele.CallbackResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*tele.CallbackResponse(nil), c.responses...)
}

// Answers returns the inline query answers
func (c *FakeContext) Answers() []*tele.QueryResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*tele.QueryResponse(nil), c.answers...)
}

// LastText returns the most recent text sent or edited
func (c *FakeContext) LastText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastText
}

// LastMarkup returns the keyboard of the most recent message
func (c *FakeContext) LastMarkup() *tele.ReplyMarkup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastMarkup
}
