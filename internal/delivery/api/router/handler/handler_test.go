package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"booknow/internal/delivery/api/validator"
	deliverycontext "booknow/internal/delivery/context"
	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	mockUsecase "booknow/internal/mocks/usecase"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Page      *struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
			Count  int `json:"count"`
		} `json:"page"`
	} `json:"meta"`
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func authenticated(c echo.Context, userID uuid.UUID, roles ...string) {
	deliverycontext.SetIdentity(c, userID, roles)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestAuthHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{RegistrationUC: uc})
	userID := uuid.New()
	expiresAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	uc.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
		return in.Email == "owner@salon.test" &&
			in.UserType == entity.UserTypeBusiness &&
			in.ReferralCode == "bnabc123" &&
			in.Business != nil && in.Business.BusinessName == "Salon One"
	})).Return(&usecase.AuthOutput{
		User:            &entity.User{ID: userID, Email: "owner@salon.test", UserType: entity.UserTypeBusiness},
		AccessToken:     "token",
		ExpiresAt:       expiresAt,
		ReferralApplied: true,
	}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{
		"email": "owner@salon.test",
		"password": "hunter2hunter2",
		"user_type": "business",
		"referral_code": "bnabc123",
		"business_name": "Salon One"
	}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out AuthResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "token", out.AccessToken)
	assert.True(t, out.ReferralApplied)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "business without a name",
			body:  `{"email":"a@b.test","password":"secret-pass","user_type":"business"}`,
			field: "business_name",
		},
		{
			name:  "unknown user type",
			body:  `{"email":"a@b.test","password":"secret-pass","user_type":"admin"}`,
			field: "user_type",
		},
		{
			name:  "bad email",
			body:  `{"email":"not-an-email","password":"secret-pass","user_type":"customer"}`,
			field: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(AuthHandlerParams{RegistrationUC: mockUsecase.NewMockRegistrationUsecase(t)})
			c, rec := newTestContext(http.MethodPost, "/auth/register", tt.body)

			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
			assert.Contains(t, env.Error.Details, tt.field)
			assert.Equal(t, "req-1", env.Meta.RequestID)
		})
	}
}

func TestAuthHandler_Login_PropagatesDomainError(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{RegistrationUC: uc})

	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@b.test", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials).Once()

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"a@b.test","password":"wrong"}`)

	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_ValidateReferralCode(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{RegistrationUC: uc})

	uc.EXPECT().ValidateReferralCode(mock.Anything, "bnabc123").Return(&usecase.ReferralCodeInfo{
		Code:         "BNABC123",
		Valid:        true,
		ReferrerName: "Salon One",
		ReferrerType: entity.UserTypeBusiness,
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/referral-codes/bnabc123", "")
	c.SetParamNames("code")
	c.SetParamValues("bnabc123")

	require.NoError(t, h.ValidateReferralCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out ReferralCodeResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.True(t, out.Valid)
	assert.Equal(t, "BNABC123", out.Code)
	assert.Equal(t, entity.UserTypeBusiness, out.ReferrerType)
}

func TestAuthHandler_GetProfile_RequiresIdentity(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{RegistrationUC: mockUsecase.NewMockRegistrationUsecase(t)})
	c, rec := newTestContext(http.MethodGet, "/api/v1/me", "")

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReferralHandler_GetDashboard(t *testing.T) {
	uc := mockUsecase.NewMockReferralUsecase(t)
	h := NewReferralHandler(ReferralHandlerParams{ReferralUC: uc})
	userID := uuid.New()

	uc.EXPECT().GetDashboard(mock.Anything, userID).Return(&usecase.ReferralDashboard{
		ReferralCode:   "BNABC123",
		ShareLink:      "https://booknow.app/join?ref=BNABC123",
		CompletedCount: 3,
		Progress:       1,
		Target:         2,
		NextMilestone:  4,
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/referrals/dashboard", "")
	authenticated(c, userID, entity.RoleCustomer)

	require.NoError(t, h.GetDashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out DashboardResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, 3, out.CompletedCount)
	assert.Equal(t, 4, out.NextMilestone)
	assert.NotNil(t, out.Referrals)
}

func TestReferralHandler_GetQRCode(t *testing.T) {
	uc := mockUsecase.NewMockReferralUsecase(t)
	h := NewReferralHandler(ReferralHandlerParams{ReferralUC: uc})
	userID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	uc.EXPECT().GetReferralQR(mock.Anything, userID).Return(png, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/referrals/qr", "")
	authenticated(c, userID)

	require.NoError(t, h.GetQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestReferralHandler_ListActivities_Paging(t *testing.T) {
	userID := uuid.New()

	t.Run("clamps the window", func(t *testing.T) {
		uc := mockUsecase.NewMockReferralUsecase(t)
		h := NewReferralHandler(ReferralHandlerParams{ReferralUC: uc})

		uc.EXPECT().ListActivities(mock.Anything, userID, usecase.Page{Limit: 100, Offset: 5}).
			Return([]*entity.Activity{{ID: uuid.New(), UserID: userID}}, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/v1/referrals/activities?limit=500&offset=5", "")
		authenticated(c, userID)

		require.NoError(t, h.ListActivities(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decode(t, rec)
		require.NotNil(t, env.Meta.Page)
		assert.Equal(t, 100, env.Meta.Page.Limit)
		assert.Equal(t, 5, env.Meta.Page.Offset)
		assert.Equal(t, 1, env.Meta.Page.Count)
	})

	t.Run("rejects a malformed limit", func(t *testing.T) {
		h := NewReferralHandler(ReferralHandlerParams{ReferralUC: mockUsecase.NewMockReferralUsecase(t)})

		c, rec := newTestContext(http.MethodGet, "/api/v1/referrals/activities?limit=ten", "")
		authenticated(c, userID)

		require.NoError(t, h.ListActivities(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBusinessHandler_GetSubscription(t *testing.T) {
	uc := mockUsecase.NewMockBusinessUsecase(t)
	h := NewBusinessHandler(BusinessHandlerParams{BusinessUC: uc})
	userID := uuid.New()
	expiry := entity.LifetimeProExpiry

	uc.EXPECT().GetSubscription(mock.Anything, userID).Return(&usecase.SubscriptionView{
		BusinessSubscription: &entity.BusinessSubscription{
			UserID:           userID,
			SubscriptionPlan: entity.PlanPro,
			ProExpiresAt:     &expiry,
		},
		IsProActive:   true,
		DaysRemaining: -1,
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/business/subscription", "")
	authenticated(c, userID, entity.RoleBusiness)

	require.NoError(t, h.GetSubscription(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, true, out["is_pro_active"])
	assert.EqualValues(t, -1, out["days_remaining"])
}

func TestFollowHandler_Follow(t *testing.T) {
	followerID, targetID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{name: "new edge", created: true, wantStatus: http.StatusCreated},
		{name: "already following", created: false, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockFollowUsecase(t)
			h := NewFollowHandler(FollowHandlerParams{FollowUC: uc})
			uc.EXPECT().Follow(mock.Anything, followerID, targetID).Return(tt.created, nil).Once()

			c, rec := newTestContext(http.MethodPost, "/api/v1/users/"+targetID.String()+"/follow", "")
			c.SetParamNames("id")
			c.SetParamValues(targetID.String())
			authenticated(c, followerID)

			require.NoError(t, h.Follow(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var out FollowStatusResponse
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
			assert.True(t, out.Following)
			assert.Equal(t, tt.created, out.Changed)
		})
	}
}

func TestFollowHandler_Follow_InvalidID(t *testing.T) {
	h := NewFollowHandler(FollowHandlerParams{FollowUC: mockUsecase.NewMockFollowUsecase(t)})

	c, rec := newTestContext(http.MethodPost, "/api/v1/users/nope/follow", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	authenticated(c, uuid.New())

	require.NoError(t, h.Follow(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFollowHandler_SearchBusinesses(t *testing.T) {
	uc := mockUsecase.NewMockFollowUsecase(t)
	h := NewFollowHandler(FollowHandlerParams{FollowUC: uc})

	uc.EXPECT().SearchBusinesses(mock.Anything, "salon", usecase.Page{Limit: 20}).Return(nil, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/businesses?q=salon", "")
	authenticated(c, uuid.New())

	require.NoError(t, h.SearchBusinesses(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}
