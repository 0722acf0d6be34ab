package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openblog/backend/database"
	"github.com/openblog/backend/errs"
	"github.com/openblog/backend/models"
	"github.com/openblog/backend/validation"
)

// postsPerPage is the fixed page size of the list endpoint.
const postsPerPage = 10

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postStore database.PostStore
}

func newPostHandler(postStore database.PostStore) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postStore: postStore,
	}
}

// parsePostID extracts the post identifier from the request path and checks
// it is a well-formed ObjectID.
func parsePostID(r *http.Request) (primitive.ObjectID, error) {
	postIDStr := chi.URLParam(r, "postID")
	if postIDStr == "" {
		return primitive.NilObjectID, errs.NewBadRequestError("missing postID")
	}

	postID, err := primitive.ObjectIDFromHex(postIDStr)
	if err != nil {
		return primitive.NilObjectID, errs.NewBadRequestError("invalid postID")
	}
	return postID, nil
}

// createPost validates and persists a new post
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode create post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := validation.Struct(req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := models.Post{
			Title: req.Title,
			Body:  req.Body,
			Tags:  req.Tags,
		}

		if err := h.postStore.Add(r.Context(), &post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "post", err))
			return
		}

		// Content-Type must be set before the explicit status write
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// listPosts returns one page of posts, newest first, with bodies truncated
// for the list view. The Last-Page header reports the total page count.
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := int64(1)
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("page", "must be an integer"))
				return
			}
			page = parsed
		}
		if page < 1 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("page", "must be 1 or greater"))
			return
		}

		total, err := h.postStore.Count(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "posts", err))
			return
		}

		posts, err := h.postStore.FindPage(r.Context(), page, postsPerPage)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "posts", err))
			return
		}

		for i := range posts {
			posts[i] = posts[i].Preview()
		}

		lastPage := int64(math.Ceil(float64(total) / float64(postsPerPage)))
		w.Header().Set("Last-Page", strconv.FormatInt(lastPage, 10))
		h.responder.WriteJSON(w, posts)
	}
}

// getPost retrieves a single post by its identifier
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postStore.FindByID(r.Context(), postID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.responder.WriteError(w, errs.NewNotFound("post"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// updatePost applies a partial update to an existing post and returns the
// merged document.
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req models.UpdatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode update post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := validation.Struct(req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		fields := bson.M{}
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Body != nil {
			fields["body"] = *req.Body
		}
		if req.Tags != nil {
			fields["tags"] = *req.Tags
		}

		post, err := h.postStore.Update(r.Context(), postID, fields)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				h.responder.WriteError(w, errs.NewNotFound("post"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update", "post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// deletePost removes a post by its identifier. Deleting a post that does not
// exist still responds 204.
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.postStore.Delete(r.Context(), postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "post", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// replacePost is declared on the API surface but full document replacement
// is not implemented.
// TODO: implement full replacement via ReplaceOne and route PUT through it.
func (h postHandler) replacePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteError(w, errs.NewNotImplementedError("replacing a post is not implemented"))
	}
}
