package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-cards/internal/controller"
	"github.com/adanyl0v/go-task-cards/internal/models"
	"github.com/adanyl0v/go-task-cards/internal/testutil"
)

type page struct {
	t      *testing.T
	router *gin.Engine
	tasks  *controller.Controller
	remote *testutil.FakeRemote
}

func newPage(t *testing.T, stored ...models.Task) *page {
	t.Helper()
	gin.SetMode(gin.TestMode)

	remote := testutil.NewFakeRemote(stored...)
	tasks := controller.New(zerolog.Nop(), remote, controller.Options{
		Thumbnail:       "assets/images/cat.svg",
		CreatedAtLayout: time.DateTime,
		RequestTimeout:  time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tasks.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		tasks.Wait()
		cancel()
		<-done
	})

	require.NoError(t, tasks.Load(ctx))
	tasks.Wait()

	router := gin.New()
	RegisterRoutes(router, New(zerolog.Nop(), tasks))
	return &page{t: t, router: router, tasks: tasks, remote: remote}
}

func (p *page) get() *goquery.Document {
	p.t.Helper()
	rec := httptest.NewRecorder()
	p.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(p.t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(p.t, err)
	return doc
}

func (p *page) post(path string, form url.Values) *httptest.ResponseRecorder {
	p.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	p.router.ServeHTTP(rec, req)
	p.tasks.Wait()
	return rec
}

func cardRef(t *testing.T, doc *goquery.Document, i int) string {
	t.Helper()
	ref, ok := doc.Find(".tasks__task").Eq(i).Attr("data-ref")
	require.True(t, ok)
	return ref
}

func TestIndexRendersLoadedTasks(t *testing.T) {
	p := newPage(t, models.Task{ID: 1, Name: "A", Description: "d", Thumbnail: "t.png", CreatedAt: "x"})

	doc := p.get()
	cards := doc.Find(".tasks__task")
	require.Equal(t, 1, cards.Length())
	assert.Equal(t, "A", cards.Find(".tasks__task-name").Text())
	assert.Equal(t, "d", cards.Find(".tasks__task-description").Text())
	assert.Equal(t, "Created at: x", cards.Find(".tasks__task-createdat").Text())
	src, _ := cards.Find(".tasks__task-thumbnail").Attr("src")
	assert.Equal(t, "t.png", src)
	assert.Equal(t, 1, cards.Find(".js-btn-edit").Length())
	assert.Equal(t, 1, cards.Find(".js-btn-delete").Length())
}

func TestCreateTaskFromForm(t *testing.T) {
	p := newPage(t)

	rec := p.post("/tasks", url.Values{"name": {"Buy milk"}, "description": {"2%"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	doc := p.get()
	assert.Equal(t, 1, doc.Find(".tasks__task").Length())
	assert.Equal(t, "Buy milk", doc.Find(".tasks__task-name").Text())

	value, _ := doc.Find(".js-input-taskname").Attr("value")
	assert.Empty(t, value)
	assert.Empty(t, doc.Find(".js-input-taskdescription").Text())
	assert.Len(t, p.remote.CallsOf("POST"), 1)
}

func TestCreateTaskWithEmptyFieldShowsAlertOnce(t *testing.T) {
	p := newPage(t)

	rec := p.post("/tasks", url.Values{"name": {"Buy milk"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := p.get()
	assert.Equal(t, 0, doc.Find(".tasks__task").Length())
	assert.Equal(t, controller.EmptyFieldAlert, doc.Find(".alert__message").Text())
	value, _ := doc.Find(".js-input-taskname").Attr("value")
	assert.Equal(t, "Buy milk", value)
	assert.Empty(t, p.remote.Calls()[1:])

	assert.Equal(t, 0, p.get().Find(".js-alert").Length())
}

func TestDeleteCard(t *testing.T) {
	p := newPage(t,
		models.Task{ID: 1, Name: "A", Description: "a"},
		models.Task{ID: 2, Name: "B", Description: "b"},
	)
	ref := cardRef(t, p.get(), 0)

	rec := p.post("/cards/"+ref+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := p.get()
	require.Equal(t, 1, doc.Find(".tasks__task").Length())
	assert.Equal(t, "B", doc.Find(".tasks__task-name").Text())

	deletes := p.remote.CallsOf("DELETE")
	require.Len(t, deletes, 1)
	assert.Equal(t, int64(1), deletes[0].ID)

	rec = p.post("/cards/"+ref+"/delete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditAndConfirm(t *testing.T) {
	p := newPage(t,
		models.Task{ID: 1, Name: "A", Description: "a", Thumbnail: "t.png", CreatedAt: "x"},
		models.Task{ID: 2, Name: "B", Description: "b", Thumbnail: "t.png", CreatedAt: "y"},
	)
	doc := p.get()
	first, second := cardRef(t, doc, 0), cardRef(t, doc, 1)

	require.Equal(t, http.StatusSeeOther, p.post("/cards/"+first+"/edit", nil).Code)
	require.Equal(t, http.StatusSeeOther, p.post("/cards/"+second+"/edit", nil).Code)

	doc = p.get()
	dialogs := doc.Find(".edit-dialog-container")
	require.Equal(t, 1, dialogs.Length())
	cardOfDialog, _ := dialogs.Attr("data-card-ref")
	assert.Equal(t, first, cardOfDialog)
	name, _ := dialogs.Find(".js-edit-taskname").Attr("value")
	assert.Equal(t, "A", name)
	maxlength, _ := dialogs.Find(".js-edit-taskname").Attr("maxlength")
	assert.Equal(t, "20", maxlength)

	dialogRef, _ := dialogs.Attr("data-ref")
	rec := p.post("/dialogs/"+dialogRef+"/confirm", url.Values{"name": {"A2"}, "description": {"a2"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc = p.get()
	assert.Equal(t, 0, doc.Find(".edit-dialog-container").Length())
	assert.Equal(t, "A2", doc.Find(".tasks__task-name").Eq(0).Text())
	assert.Equal(t, "B", doc.Find(".tasks__task-name").Eq(1).Text())
	assert.Equal(t, "Created at: x", doc.Find(".tasks__task-createdat").Eq(0).Text())

	puts := p.remote.CallsOf("PUT")
	require.Len(t, puts, 1)
	assert.Equal(t, models.Task{ID: 1, Name: "A2", Description: "a2", Thumbnail: "t.png", CreatedAt: "x"}, puts[0].Task)
}

func TestEditAndCancel(t *testing.T) {
	p := newPage(t, models.Task{ID: 1, Name: "A", Description: "a"})
	ref := cardRef(t, p.get(), 0)
	before, err := p.get().Find(".tasks__task").Html()
	require.NoError(t, err)

	p.post("/cards/"+ref+"/edit", nil)
	dialogRef, _ := p.get().Find(".edit-dialog-container").Attr("data-ref")
	rec := p.post("/dialogs/"+dialogRef+"/cancel", url.Values{"name": {"ignored"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := p.get()
	assert.Equal(t, 0, doc.Find(".edit-dialog-container").Length())
	after, err := doc.Find(".tasks__task").Html()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, p.remote.CallsOf("PUT"))
}

func TestUnknownDialog(t *testing.T) {
	p := newPage(t)

	rec := p.post("/dialogs/nope/confirm", url.Values{"name": {"x"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticAssets(t *testing.T) {
	p := newPage(t)

	for _, path := range []string{"/assets/css/style.css", "/assets/images/cat.svg"} {
		rec := httptest.NewRecorder()
		p.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
