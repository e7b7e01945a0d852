package submissions

import (
	"errors"
	"net/http"
	"strconv"

	"interview-hub/internal/api"
	"interview-hub/internal/database"
	"interview-hub/internal/middleware"
	"interview-hub/internal/model"
	"interview-hub/internal/service"
	"interview-hub/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	createSubmission      = store.CreateSubmission
	getSubmissionByID     = store.GetSubmissionByID
	listSubmissions       = store.ListSubmissions
	listSubmissionsByUser = store.ListSubmissionsByUser
	updateSubmission      = store.UpdateSubmission
	deleteSubmission      = store.DeleteSubmission
)

const defaultPageSize = 10

func callerID(c echo.Context) (int, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

// requestRounds converts the payload rounds and applies sanitation: blank
// questions are stripped and question-less rounds dropped. Returns nil when
// nothing survives.
func requestRounds(reqRounds []api.InterviewRoundRequest) []model.InterviewRound {
	rounds := make([]model.InterviewRound, 0, len(reqRounds))
	for _, r := range reqRounds {
		rounds = append(rounds, model.InterviewRound{
			RoundNumber: r.RoundNumber,
			RoundType:   r.RoundType,
			Description: r.Description,
			Questions:   r.Questions,
		})
	}
	rounds = service.SanitizeRounds(rounds)
	if len(rounds) == 0 {
		return nil
	}
	return rounds
}

// @Summary     Create a submission
// @Description Store an interview experience owned by the caller
// @Tags        submissions
// @Accept      json
// @Produce     json
// @Param       request body api.SubmissionRequest true "Submission payload"
// @Success     201 {object} api.SubmissionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /submissions [post]
func CreateSubmissionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.SubmissionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		rounds := requestRounds(req.InterviewRounds)
		if rounds == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "At least one interview round with questions is required"})
		}
		if req.Result == "" {
			req.Result = model.ResultPending
		}

		sub, err := createSubmission(c.Request().Context(), db, &model.Submission{
			UserID:     userID,
			Company:    req.Company,
			Position:   req.Position,
			Country:    req.Country,
			Experience: req.Experience,
			Rounds:     rounds,
			Difficulty: req.Difficulty,
			Result:     req.Result,
			Salary:     req.Salary,
			Tips:       req.Tips,
		})
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusCreated, api.NewSubmissionResponse(sub))
	}
}

// @Summary     List submissions
// @Description Paginated, filterable list of all submissions, newest first
// @Tags        submissions
// @Produce     json
// @Param       page       query int    false "Page (1-indexed)" default(1)
// @Param       limit      query int    false "Page size" default(10)
// @Param       search     query string false "Substring match on company or position"
// @Param       company    query string false "Substring match on company"
// @Param       difficulty query string false "Exact difficulty" Enums(Easy, Medium, Hard)
// @Success     200 {object} api.ListSubmissionsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /submissions [get]
func ListSubmissionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.QueryParam("limit"))
		if err != nil || limit < 1 {
			limit = defaultPageSize
		}

		q := store.SubmissionQuery{
			Page:       page,
			Limit:      limit,
			Search:     c.QueryParam("search"),
			Company:    c.QueryParam("company"),
			Difficulty: c.QueryParam("difficulty"),
		}
		items, total, err := listSubmissions(c.Request().Context(), db, q)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		out := make([]api.SubmissionResponse, 0, len(items))
		for i := range items {
			out = append(out, api.NewSubmissionWithOwnerResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, api.ListSubmissionsResponse{
			Submissions: out,
			Pagination: api.Pagination{
				Total:       total,
				TotalPages:  (total + limit - 1) / limit,
				CurrentPage: page,
				PerPage:     limit,
			},
		})
	}
}

// @Summary     Get a submission
// @Tags        submissions
// @Produce     json
// @Param       id path string true "Submission ID"
// @Success     200 {object} api.SubmissionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /submissions/{id} [get]
func GetSubmissionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid submission ID"})
		}
		sub, err := getSubmissionByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Submission not found"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		return c.JSON(http.StatusOK, api.NewSubmissionWithOwnerResponse(sub))
	}
}

// @Summary     Update a submission
// @Description Replace the mutable fields of a submission owned by the caller
// @Tags        submissions
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Submission ID"
// @Param       request body api.SubmissionRequest true "Replacement payload"
// @Success     200 {object} api.SubmissionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /submissions/{id} [put]
func UpdateSubmissionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid submission ID"})
		}

		var req api.SubmissionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		existing, err := getSubmissionByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Submission not found"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		if existing.UserID != userID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Not authorized"})
		}

		rounds := requestRounds(req.InterviewRounds)
		if rounds == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "At least one interview round with questions is required"})
		}
		if req.Result == "" {
			req.Result = model.ResultPending
		}

		sub := &model.Submission{
			ID:         id,
			UserID:     existing.UserID,
			Company:    req.Company,
			Position:   req.Position,
			Country:    req.Country,
			Experience: req.Experience,
			Rounds:     rounds,
			Difficulty: req.Difficulty,
			Result:     req.Result,
			Salary:     req.Salary,
			Tips:       req.Tips,
			CreatedAt:  existing.CreatedAt,
		}
		if err := updateSubmission(c.Request().Context(), db, sub); err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		return c.JSON(http.StatusOK, api.NewSubmissionResponse(sub))
	}
}

// @Summary     Delete a submission
// @Description Remove a submission owned by the caller
// @Tags        submissions
// @Produce     json
// @Param       id path string true "Submission ID"
// @Success     200 {object} map[string]string
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /submissions/{id} [delete]
func DeleteSubmissionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid submission ID"})
		}

		existing, err := getSubmissionByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Submission not found"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		if existing.UserID != userID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Not authorized"})
		}

		if err := deleteSubmission(c.Request().Context(), db, id); err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Submission removed"})
	}
}

// @Summary     List own submissions
// @Description Every submission owned by the caller, newest first
// @Tags        submissions
// @Produce     json
// @Success     200 {array} api.SubmissionResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /submissions/user/submissions [get]
func ListMySubmissionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		items, err := listSubmissionsByUser(c.Request().Context(), db, userID)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		out := make([]api.SubmissionResponse, 0, len(items))
		for i := range items {
			out = append(out, api.NewSubmissionResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}
