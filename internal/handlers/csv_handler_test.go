package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/apiclient"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/notify"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"
	"finance-dashboard/internal/views"
	"finance-dashboard/web"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CSVHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	ctrl     *gomock.Controller
	mockSvc  *service_mocks.MockDashboardServiceInterface
	notifier *notify.Center
	handler  *CSVHandler
}

func TestCSVHandlerSuite(t *testing.T) {
	suite.Run(t, new(CSVHandlerTestSuite))
}

func (s *CSVHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	renderer, err := views.NewRenderer(web.TemplatesFS, views.DefaultBindings())
	s.Require().NoError(err)
	s.echo.Renderer = renderer
	s.echo.Validator = NewValidator()

	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.notifier = notify.NewCenter()
	dashboard := NewDashboardHandler(s.mockSvc, views.DefaultBindings(), s.notifier)
	s.handler = NewCSVHandler(dashboard, s.mockSvc, s.notifier)
}

func (s *CSVHandlerTestSuite) multipartUpload(fieldName, filename, content string) (*httptest.ResponseRecorder, echo.Context) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, filename)
	s.Require().NoError(err)
	_, err = part.Write([]byte(content))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return rec, s.echo.NewContext(req, rec)
}

func (s *CSVHandlerTestSuite) TestImportCSV_Success() {
	s.mockSvc.EXPECT().
		ImportCSV(gomock.Any(), "transactions.csv", gomock.Any()).
		Return(&apiclient.ImportResult{Message: "Imported 12 transactions"}, nil)
	// Imports can add categories, so the cache reloads
	s.mockSvc.EXPECT().ReloadCategories(gomock.Any()).Return([]models.Category{}, nil)
	s.mockSvc.EXPECT().RefreshAll(gomock.Any()).Return(services.DashboardState{}, nil)

	rec, c := s.multipartUpload("file", "transactions.csv", "amount,type,date\n10,expense,2025-01-01\n")

	s.NoError(s.handler.ImportCSV(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Imported 12 transactions")
}

func (s *CSVHandlerTestSuite) TestImportCSV_MissingFile() {
	// No EXPECT calls: nothing reaches the service without a file
	req := httptest.NewRequest(http.MethodPost, "/import", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ImportCSV(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "No file provided")
}

func (s *CSVHandlerTestSuite) TestImportCSV_UpstreamRejects() {
	s.mockSvc.EXPECT().
		ImportCSV(gomock.Any(), "bad.csv", gomock.Any()).
		Return(nil, &apiclient.APIError{
			Code:       errors.ImportFailed,
			StatusCode: http.StatusBadRequest,
			Message:    "Row 3: invalid date",
		})

	rec, c := s.multipartUpload("file", "bad.csv", "garbage")

	s.NoError(s.handler.ImportCSV(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	// The server's row-level error text reaches the user
	s.Contains(rec.Body.String(), "Row 3: invalid date")
}

func (s *CSVHandlerTestSuite) TestExportCSV_Download() {
	payload := []byte("id,amount,type\n1,10.00,expense\n")
	s.mockSvc.EXPECT().ExportCSV(gomock.Any()).Return(payload, nil)

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ExportCSV(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(payload, rec.Body.Bytes())
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/csv")
	s.Equal(`attachment; filename="transactions.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
}

func (s *CSVHandlerTestSuite) TestExportCSV_UpstreamFailure() {
	s.mockSvc.EXPECT().ExportCSV(gomock.Any()).Return(nil, &apiclient.APIError{Code: errors.UpstreamUnreachable})

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ExportCSV(c))
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), "Error exporting transactions")
}
