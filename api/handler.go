package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/NovatecConsulting/library-service-go/collection"
	"github.com/NovatecConsulting/library-service-go/core"
)

var json = jsoniter.ConfigFastest

const (
	msgBodyNotReadable   = "The request's body could not be read. It's either empty or malformed."
	msgUnexpectedFailure = "An unexpected error occurred."
	bookIDParam          = "bookId"
)

// BooksHandler serves the /api/books endpoints.
type BooksHandler struct {
	collection *collection.BookCollection
	clock      collection.Clock
	logger     *slog.Logger
}

// NewBooksHandler creates a BooksHandler. The clock is only used for the
// timestamps in error responses.
func NewBooksHandler(bookCollection *collection.BookCollection, clock collection.Clock, logger *slog.Logger) *BooksHandler {
	return &BooksHandler{
		collection: bookCollection,
		clock:      clock,
		logger:     logger,
	}
}

// Router builds the chi router for the /api/books resource.
func (h *BooksHandler) Router() chi.Router {
	r := chi.NewRouter()

	r.Route("/api/books", func(r chi.Router) {
		r.Get("/", h.getBooks)
		r.Post("/", h.postBook)

		r.Route("/{bookId}", func(r chi.Router) {
			r.Get("/", h.getBook)
			r.Delete("/", h.deleteBook)
			r.Put("/title", h.putBookTitle)
			r.Put("/authors", h.putBookAuthors)
			r.Delete("/authors", h.deleteBookAuthors)
			r.Put("/numberOfPages", h.putBookNumberOfPages)
			r.Delete("/numberOfPages", h.deleteBookNumberOfPages)
			r.Post("/borrow", h.postBorrowBook)
			r.Post("/return", h.postReturnBook)
		})
	})

	return r
}

func (h *BooksHandler) getBooks(w http.ResponseWriter, r *http.Request) {
	records, err := h.collection.GetAllBooks(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResources(records))
}

func (h *BooksHandler) postBook(w http.ResponseWriter, r *http.Request) {
	var body CreateBookRequest
	if !h.readBody(w, r, &body) {
		return
	}

	isbn, err := core.ParseIsbn13(body.Isbn)
	if err != nil {
		h.writeError(w, err)
		return
	}

	title, err := core.NewTitle(body.Title)
	if err != nil {
		h.writeError(w, err)
		return
	}

	book, err := core.NewBook(isbn, title, nil, nil)
	if err != nil {
		h.writeError(w, err)
		return
	}

	record, err := h.collection.AddBook(r.Context(), book)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toResource(record))
}

func (h *BooksHandler) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	record, err := h.collection.GetBook(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResource(record))
}

func (h *BooksHandler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	if err := h.collection.RemoveBook(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BooksHandler) putBookTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	var body UpdateTitleRequest
	if !h.readBody(w, r, &body) {
		return
	}

	title, err := core.NewTitle(body.Title)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.update(w, r, id, func(record core.BookRecord) core.BookRecord {
		return record.ChangeTitle(title)
	})
}

func (h *BooksHandler) putBookAuthors(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	var body UpdateAuthorsRequest
	if !h.readBody(w, r, &body) {
		return
	}

	if len(body.Authors) == 0 {
		h.writeError(w, core.NewMalformedValueError(
			"the list of authors has an invalid format",
			"authors: must not be empty",
		))
		return
	}

	authors := make([]core.Author, 0, len(body.Authors))
	for _, raw := range body.Authors {
		author, err := core.NewAuthor(raw)
		if err != nil {
			h.writeError(w, err)
			return
		}

		authors = append(authors, author)
	}

	h.update(w, r, id, func(record core.BookRecord) core.BookRecord {
		return record.ChangeAuthors(authors)
	})
}

func (h *BooksHandler) deleteBookAuthors(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	h.update(w, r, id, func(record core.BookRecord) core.BookRecord {
		return record.ChangeAuthors(nil)
	})
}

func (h *BooksHandler) putBookNumberOfPages(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	var body UpdateNumberOfPagesRequest
	if !h.readBody(w, r, &body) {
		return
	}

	if body.NumberOfPages <= 0 {
		h.writeError(w, core.NewMalformedValueError(
			"the number of pages has an invalid value",
			"numberOfPages: must be positive",
		))
		return
	}

	numberOfPages := body.NumberOfPages

	h.update(w, r, id, func(record core.BookRecord) core.BookRecord {
		return record.ChangeNumberOfPages(&numberOfPages)
	})
}

func (h *BooksHandler) deleteBookNumberOfPages(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	h.update(w, r, id, func(record core.BookRecord) core.BookRecord {
		return record.ChangeNumberOfPages(nil)
	})
}

func (h *BooksHandler) postBorrowBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	var body BorrowBookRequest
	if !h.readBody(w, r, &body) {
		return
	}

	borrower, err := core.NewBorrower(body.Borrower)
	if err != nil {
		h.writeError(w, err)
		return
	}

	record, err := h.collection.BorrowBook(r.Context(), id, borrower)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResource(record))
}

func (h *BooksHandler) postReturnBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	record, err := h.collection.ReturnBook(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResource(record))
}

// update runs the given transformation through the collection and writes
// the updated record, mapping errors onto status codes.
func (h *BooksHandler) update(w http.ResponseWriter, r *http.Request, id core.BookID, action collection.UpdateAction) {
	record, err := h.collection.UpdateBook(r.Context(), id, action)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResource(record))
}

// bookID parses the bookId path parameter, writing a 400 response on failure.
func (h *BooksHandler) bookID(w http.ResponseWriter, r *http.Request) (core.BookID, bool) {
	id, err := core.ParseBookID(chi.URLParam(r, bookIDParam))
	if err != nil {
		h.writeErrorDescription(w, newErrorDescription(
			http.StatusBadRequest,
			h.clock.Now(),
			"the book id has an invalid format",
			"id: must be a valid UUID",
		))

		return core.BookID{}, false
	}

	return id, true
}

// readBody decodes the request body, writing a 400 response on failure.
func (h *BooksHandler) readBody(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		h.writeErrorDescription(w, newErrorDescription(http.StatusBadRequest, h.clock.Now(), msgBodyNotReadable))
		return false
	}

	return true
}

// writeError maps a domain error onto a status code and writes the
// ErrorDescription response.
func (h *BooksHandler) writeError(w http.ResponseWriter, err error) {
	var malformed *core.MalformedValueError

	switch {
	case errors.As(err, &malformed):
		h.writeErrorDescription(w, newErrorDescription(http.StatusBadRequest, h.clock.Now(), malformed.Message, malformed.Details...))

	case errors.Is(err, core.ErrBookNotFound):
		h.writeErrorDescription(w, newErrorDescription(http.StatusNotFound, h.clock.Now(), err.Error()))

	case errors.Is(err, core.ErrBookAlreadyBorrowed), errors.Is(err, core.ErrBookAlreadyReturned):
		h.writeErrorDescription(w, newErrorDescription(http.StatusConflict, h.clock.Now(), err.Error()))

	default:
		h.logger.Error("request failed", "error", err.Error())
		h.writeErrorDescription(w, newErrorDescription(http.StatusInternalServerError, h.clock.Now(), msgUnexpectedFailure))
	}
}

func (h *BooksHandler) writeErrorDescription(w http.ResponseWriter, description ErrorDescription) {
	h.writeJSON(w, description.Status, description)
}

func (h *BooksHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response body", "error", err.Error())
	}
}
