package handler

import (
	"timetable/internal/core"
	"timetable/internal/dto"
	cErr "timetable/internal/pkg/error"
	"timetable/internal/pkg/response"
	"timetable/internal/service"
	"timetable/internal/telemetry"
	"timetable/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type OpsUserHandler struct {
	trace          *telemetry.Trace
	accountService *service.AccountService
}

func NewOpsUserHandler(trace *telemetry.Trace, accountService *service.AccountService) *OpsUserHandler {
	return &OpsUserHandler{trace: trace, accountService: accountService}
}

// List 帳號列表（支援 group / subscribed 篩選與分頁）
func (h *OpsUserHandler) List(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	page, _ := validate.GetInt64Query(c, "page", 0)
	size, _ := validate.GetInt64Query(c, "size", 20)
	group := c.Query("group")
	subscribed := c.Query("subscribed")

	filter := bson.M{}
	if group != "" {
		filter["group"] = group
	}
	if subscribed == "true" {
		filter["notifications"] = true
		filter["group"] = bson.M{"$exists": true}
	}

	users, err := h.accountService.ListUsers(ctx, filter, page, size)
	h.trace.ApplyTraceAttributes(span, core.TraceUserListMeta{
		Page:        page,
		Size:        size,
		ResultCount: len(users),
	})
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	resp := make([]*dto.UserResponseDto, len(users))
	for i, user := range users {
		resp[i] = dto.NewUserResponse(user)
	}
	response.Success(c, resp)
}

// Get 取得單一帳號
func (h *OpsUserHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	telegramID, cause, respErr := validate.ParseTelegramID(c, "telegramID")
	if respErr != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	user, err := h.accountService.GetUserByID(ctx, telegramID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	if user == nil {
		response.AbortWithError(c, cErr.NotFound("user not found"))
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}

// AssignGroup 營運代操：自由文字走同一套群組解析
func (h *OpsUserHandler) AssignGroup(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	telegramID, cause, respErr := validate.ParseTelegramID(c, "telegramID")
	if respErr != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.AssignGroupDto
	if cause, bindErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, bindErr)
		return
	}

	resolved, err := h.accountService.ChangeGroup(ctx, telegramID, req.Group)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	if !resolved {
		response.AbortWithError(c, cErr.BadRequestBody("group did not resolve against the roster"))
		return
	}

	user, err := h.accountService.GetUserByID(ctx, telegramID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}
