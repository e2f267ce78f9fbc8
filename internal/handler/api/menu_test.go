//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"little-lemon/internal/domain"
	"little-lemon/internal/handler/api"
	resdto "little-lemon/internal/handler/dto/response"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/pkg/patch"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"
	"little-lemon/tests/common/builder"
	"little-lemon/tests/common/httptest"
	"little-lemon/tests/common/testutil"
	commandsmock "little-lemon/tests/mock/commands"
	queriesmock "little-lemon/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMenuCommands
	mockQueries  *queriesmock.MockMenuQueries
	handler      *api.MenuHandler
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMenuCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMenuQueries(s.mockCtrl)
	s.handler = api.NewMenuHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/menu", s.handler.List)
	s.router.POST("/menu", s.handler.Create)
	s.router.GET("/menu/:id", s.handler.Get)
	s.router.PUT("/menu/:id", s.handler.Update)
	s.router.PATCH("/menu/:id", s.handler.Update)
	s.router.DELETE("/menu/:id", s.handler.Delete)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestList() {
	s.Run("success: bare array", func() {
		items := []*queries.MenuItemView{
			builder.NewMenuItemBuilder().BuildReadModel(),
			builder.NewMenuItemBuilder().With(func(b *builder.MenuItemBuilder) { b.ID = 2; b.Title = "Lemon Dessert" }).BuildReadModel(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu", nil, "")
		var res []resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 2)
		s.Equal("Lemon Dessert", res[1].Title)
	})

	s.Run("error: store failure is 500 without details", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "A server error occurred.")
		s.NotContains(rec.Body.String(), "connection refused")
	})
}

func (s *MenuHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		item := builder.NewMenuItemBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(item, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu/1", nil, "")
		var res resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("12.50", res.Price)
	})

	s.Run("error: unknown id is 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, queries.ErrMenuItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, api.DetailMenuItemNotFound)
	})

	s.Run("error: malformed id is 400", func() {
		for _, id := range []string{"abc", "0", "-1"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu/"+id, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})
}

type testCaseMenu struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *MenuHandlerTestSuite) TestCreate() {
	reqBody := builder.NewMenuItemBuilder().BuildDTO()
	created := builder.NewMenuItemBuilder().BuildReadModel()

	s.Run("success: 201 with envelope", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToCommand()).
			Return(&commands.CreateMenuItemResult{ID: created.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), created.ID).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menu", reqBody, "")
		var res resdto.MenuItemEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(api.DetailMenuItemCreated, res.Detail)
		s.Equal(created.Title, res.MenuItem.Title)
	})

	s.Run("error: 400 on binding errors", func() {
		cases := []testCaseMenu{
			{name: "missing title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
			{name: "missing price", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest},
			{name: "missing inventory", mutate: testutil.Field("inventory", nil), expectCode: http.StatusBadRequest},
			{name: "price not a number", mutate: testutil.Field("price", true), expectCode: http.StatusBadRequest},
			{name: "inventory not an integer", mutate: testutil.Field("inventory", "ten"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menu", body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: domain validation lists fields", func() {
		verr := domain.NewValidationError()
		verr.Add("price", "Ensure that there are no more than 2 decimal places.")
		verr.Add("inventory", "Ensure this value is less than or equal to 65535.")
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, verr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menu", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		httptest.AssertFieldErrors(s.T(), rec, "price", "inventory")
	})

	s.Run("error: duplicate title is a title field error", func() {
		dup := errs.Mark(domain.NewFieldError("title", "menu with this title already exists."), commands.ErrDuplicateTitle)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, dup).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menu", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		httptest.AssertFieldErrors(s.T(), rec, "title")
	})
}

func (s *MenuHandlerTestSuite) TestUpdate() {
	updated := builder.NewMenuItemBuilder().WithInventory(5).BuildReadModel()

	s.Run("success: only given fields are forwarded", func() {
		for _, method := range []string{http.MethodPut, http.MethodPatch} {
			want := commands.UpdateMenuItemRequest{Inventory: patch.Ptr(5)}
			s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), want).Return(nil).Times(1)
			s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(updated, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, method, "/menu/1", map[string]any{"inventory": 5}, "")
			var res resdto.MenuItemEnvelope
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
			s.Equal(api.DetailMenuItemUpdated, res.Detail)
			s.Equal(5, res.MenuItem.Inventory)
		}
	})

	s.Run("success: exponent price reaches the command as written", func() {
		want := commands.UpdateMenuItemRequest{Price: patch.Ptr("1e1")}
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), want).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(updated, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/menu/1", `{"price": 1e1}`, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: no recognised field returns guidance", func() {
		for _, body := range []string{"{}", "", `{"colour":"yellow"}`} {
			s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(updated, nil).Times(1)
			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/menu/1", body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, api.DetailMenuEmptyUpdate)
			httptest.AssertFieldErrors(s.T(), rec, "title", "price", "inventory")
		}
	})

	s.Run("error: unknown id with no fields is 404", func() {
		for _, method := range []string{http.MethodPut, http.MethodPatch} {
			s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(999999)).Return(nil, queries.ErrMenuItemNotFound).Times(1)

			rec := httptest.PerformRawRequest(s.T(), s.router, method, "/menu/999999", "{}", "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, api.DetailMenuItemNotFound)
		}
	})

	s.Run("error: unknown id is 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).
			Return(errs.Mark(errors.New("no rows"), commands.ErrMenuItemNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/menu/9", map[string]any{"title": "Soup"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, api.DetailMenuItemNotFound)
	})
}

func (s *MenuHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/menu/1", nil, "")
		var res resdto.DetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(api.DetailMenuItemDeleted, res.Detail)
	})

	s.Run("error: unknown id is 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(9)).
			Return(errs.Mark(errors.New("no rows"), commands.ErrMenuItemNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/menu/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, api.DetailMenuItemNotFound)
	})
}
