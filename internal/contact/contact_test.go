package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 123_000_000, time.UTC)

type harness struct {
	form   *dom.MemForm
	button *dom.MemElement
	status *dom.MemElement
	clock  *scheduler.Virtual
	logs   *observer.ObservedLogs
	sent   []Record
	fail   error
	p      *Pipeline
}

func newHarness() *harness {
	doc := dom.NewMemDocument(dom.NewMemWindow(1280, 800))
	core, logs := observer.New(zapcore.DebugLevel)

	h := &harness{
		form:   doc.AddForm("contactForm"),
		button: doc.Add("submitBtn"),
		status: doc.Add("formMessage"),
		clock:  scheduler.NewVirtual(),
		logs:   logs,
	}
	h.button.SetText(SubmitLabel)
	h.status.SetStyle("display", "none")

	h.p = NewPipeline(Config{
		Form:   h.form,
		Button: h.button,
		Status: h.status,
		Submitter: SubmitterFunc(func(_ context.Context, r Record) error {
			h.sent = append(h.sent, r)
			if h.fail != nil {
				return h.fail
			}
			return nil
		}),
		Scheduler: h.clock,
		Now:       func() time.Time { return fixedNow },
		Log:       zap.New(core),
	})

	return h
}

func (h *harness) fill(name, email, subject, message string) {
	h.form.SetValue(FieldName, name).
		SetValue(FieldEmail, email).
		SetValue(FieldSubject, subject).
		SetValue(FieldMessage, message)
}

func TestRecordFromFormIsVerbatim(t *testing.T) {
	h := newHarness()
	h.fill("  Jane ", "jane@example.com", "Hi\n", " msg ")

	rec := RecordFromForm(h.form, fixedNow)
	require.Equal(t, Record{
		Name:      "  Jane ",
		Email:     "jane@example.com",
		Subject:   "Hi\n",
		Message:   " msg ",
		Timestamp: "2026-10-14T09:30:00.123Z",
	}, rec)
}

func TestFormatTimestampUsesUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, zone)
	require.Equal(t, "2026-01-02T01:04:05.000Z", FormatTimestamp(ts))
}

func TestSubmitSuccess(t *testing.T) {
	h := newHarness()
	h.fill("Jane Doe", "jane@example.com", "Hi", "This is a test message.")

	state := h.p.Submit(context.Background())
	require.Equal(t, Success, state)

	require.Len(t, h.sent, 1)
	require.Equal(t, "Jane Doe", h.sent[0].Name)

	require.Equal(t, "block", h.status.Style("display"))
	require.Equal(t, successClass, h.status.ClassName())
	require.Equal(t, SuccessMessage, h.status.Text())

	require.False(t, h.button.Disabled())
	require.Equal(t, SubmitLabel, h.button.Text())

	// Fields are cleared.
	require.Empty(t, h.form.Value(FieldName))
	require.Empty(t, h.form.Value(FieldMessage))

	// The self-test ran against what was sent.
	sum := h.p.LastSummary()
	require.NotNil(t, sum)
	require.Equal(t, 6, sum.Passed)
	require.Equal(t, 1, h.logs.FilterMessage("Self-test results").Len())

	// The message hides itself after the timeout.
	h.clock.Advance(StatusTimeout - time.Millisecond)
	require.Equal(t, "block", h.status.Style("display"))
	h.clock.Advance(time.Millisecond)
	require.Equal(t, "none", h.status.Style("display"))
	require.Equal(t, Idle, h.p.State())
}

func TestSelfTestNeverBlocksSuccess(t *testing.T) {
	h := newHarness()
	h.fill("J", "bad-email", "", "short")

	require.Equal(t, Success, h.p.Submit(context.Background()))
	require.Equal(t, SuccessMessage, h.status.Text())
	require.Equal(t, 2, h.p.LastSummary().Passed)
	require.Equal(t, 4, h.logs.FilterMessage("Self-test failed").Len())
}

func TestSubmitFailure(t *testing.T) {
	h := newHarness()
	h.fill("Jane Doe", "jane@example.com", "Hi", "This is a test message.")
	h.fail = errors.New("network down")

	require.Equal(t, Failed, h.p.Submit(context.Background()))

	require.Equal(t, errorClass, h.status.ClassName())
	require.Equal(t, ErrorMessage, h.status.Text())
	require.False(t, h.button.Disabled())
	require.Equal(t, SubmitLabel, h.button.Text())

	// Fields are kept for another attempt and no self-test ran.
	require.Equal(t, "Jane Doe", h.form.Value(FieldName))
	require.Nil(t, h.p.LastSummary())

	errs := h.logs.FilterMessage("Form submission error").All()
	require.Len(t, errs, 1)
	require.Equal(t, "network down", errs[0].ContextMap()["error"])

	// No retry.
	h.clock.Advance(time.Minute)
	require.Len(t, h.sent, 1)
	require.Equal(t, "none", h.status.Style("display"))
}

func TestInFlightState(t *testing.T) {
	h := newHarness()
	h.fill("Jane Doe", "jane@example.com", "Hi", "This is a test message.")

	release := make(chan struct{})
	h.p.cfg.Submitter = SubmitterFunc(func(context.Context, Record) error {
		<-release
		return nil
	})

	h.status.SetStyle("display", "block")
	h.p.Bind(context.Background())
	require.True(t, h.form.Submit().Prevented)

	require.Equal(t, Submitting, h.p.State())
	require.True(t, h.button.Disabled())
	require.Equal(t, BusyLabel, h.button.Text())
	require.Equal(t, "none", h.status.Style("display"))

	// A second submit while in flight is ignored.
	h.p.HandleSubmit(context.Background(), &dom.MemEvent{})

	close(release)
	require.Eventually(t, func() bool {
		return h.clock.Pending() > 0
	}, 5*time.Second, time.Millisecond)

	h.clock.RunPending()
	require.Equal(t, Success, h.p.State())
	require.False(t, h.button.Disabled())
}

func TestNewerStatusSurvivesOlderTimer(t *testing.T) {
	h := newHarness()
	h.fill("Jane Doe", "jane@example.com", "Hi", "This is a test message.")
	h.p.Submit(context.Background())

	h.clock.Advance(4 * time.Second)
	h.fail = errors.New("boom")
	h.p.Submit(context.Background())

	// The first message's timer fires at 5s but the error stays up.
	h.clock.Advance(2 * time.Second)
	require.Equal(t, "block", h.status.Style("display"))
	require.Equal(t, ErrorMessage, h.status.Text())

	h.clock.Advance(3 * time.Second)
	require.Equal(t, "none", h.status.Style("display"))
}

func TestHTTPSubmitterPostsJSON(t *testing.T) {
	type captured struct {
		method      string
		contentType string
		body        Record
	}
	got := make(chan captured, 1)

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			var rec Record
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &rec)
			got <- captured{r.Method, r.Header.Get("Content-Type"), rec}

			// The status is never inspected.
			w.WriteHeader(http.StatusInternalServerError)
		},
	))
	defer srv.Close()

	rec := Record{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi",
		Message: "Hello there", Timestamp: FormatTimestamp(fixedNow),
	}
	s := NewHTTPSubmitter(srv.URL, nil)
	require.Equal(t, srv.URL, s.Endpoint())
	require.NoError(t, s.Submit(context.Background(), rec))

	c := <-got
	require.Equal(t, http.MethodPost, c.method)
	require.Equal(t, "application/json", c.contentType)
	require.Equal(t, rec, c.body)
}

func TestHTTPSubmitterTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewHTTPSubmitter(url, nil).Submit(context.Background(), Record{})
	require.ErrorIs(t, err, ErrTransport)

	err = NewHTTPSubmitter("://bad", nil).Submit(context.Background(), Record{})
	require.ErrorIs(t, err, ErrTransport)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "submitting", Submitting.String())
	require.Equal(t, "success", Success.String())
	require.Equal(t, "error", Failed.String())
}
