package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/kendall-kelly/task-exchange-api/store"
	"github.com/stretchr/testify/suite"
)

// ExchangeAcceptanceTestSuite drives the API over a real HTTP listener
type ExchangeAcceptanceTestSuite struct {
	suite.Suite
	server *httptest.Server
	store  *store.Store
}

// SetupTest starts a server over a freshly seeded store for every test
func (s *ExchangeAcceptanceTestSuite) SetupTest() {
	router, st := setupRouter(s.T())
	s.store = st
	s.server = httptest.NewServer(router)
}

func (s *ExchangeAcceptanceTestSuite) TearDownTest() {
	s.server.Close()
}

// do sends a request with an optional JSON body and returns the response and its body
func (s *ExchangeAcceptanceTestSuite) do(method, path string, body interface{}, header http.Header) (*http.Response, []byte) {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, data
}

func (s *ExchangeAcceptanceTestSuite) create(path string, body interface{}) string {
	resp, data := s.do(http.MethodPost, path, body, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(data))
	s.Empty(data)

	location := resp.Header.Get("Location")
	s.Require().True(strings.HasPrefix(location, path+"/"), location)
	return location
}

// TestExchangeWorkflow_Acceptance walks a customer posting an order and an executor bidding on it
func (s *ExchangeAcceptanceTestSuite) TestExchangeWorkflow_Acceptance() {
	// Step 1: both parties register
	customer := s.create("/users", map[string]interface{}{
		"first_name": "Carla", "last_name": "Mendes", "age": "41",
		"email": "carla@example.com", "role": "customer", "phone": "+351000000",
	})
	executor := s.create("/users", map[string]interface{}{
		"first_name": "Igor", "last_name": "Petrov", "age": "29",
		"email": "igor@example.com", "role": "executor", "phone": "+7000000",
	})
	customerID := strings.TrimPrefix(customer, "/users/")
	executorID := strings.TrimPrefix(executor, "/users/")

	// Step 2: the customer posts an order
	order := s.create("/orders", map[string]interface{}{
		"name": "Move sofa", "description": "Third floor, no lift",
		"start_date": "01/03/2024", "end_date": "02/03/2024",
		"address": "Rua Augusta 10", "price": 2500,
		"customer_id": mustUint(customerID),
	})
	orderID := strings.TrimPrefix(order, "/orders/")

	resp, data := s.do(http.MethodGet, order, nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"id":`+orderID+`,"name":"Move sofa","description":"Third floor, no lift"}`, string(data))

	// Step 3: the executor makes an offer
	offer := s.create("/offers", map[string]interface{}{
		"order_id":    mustUint(orderID),
		"executor_id": mustUint(executorID),
	})
	offerID := strings.TrimPrefix(offer, "/offers/")

	resp, data = s.do(http.MethodGet, "/offers", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(data), `{"id":`+offerID+`,"order_id":`+orderID+`,"executor_id":`+executorID+`}`)

	// Step 4: the order is assigned by overwriting it with the executor set
	resp, data = s.do(http.MethodPut, order, map[string]interface{}{
		"name": "Move sofa", "description": "Assigned",
		"customer_id": mustUint(customerID), "executor_id": mustUint(executorID),
	}, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Empty(data)

	row, err := s.store.Orders.Get(s.T().Context(), mustUint(orderID))
	s.Require().NoError(err)
	s.Equal("Assigned", row.Description)
	s.Empty(row.Address, "fields absent from PUT are reset")
	s.Require().NotNil(row.ExecutorID)
	s.Equal(mustUint(executorID), *row.ExecutorID)

	// Step 5: the offer is withdrawn, twice
	for i := 0; i < 2; i++ {
		resp, _ = s.do(http.MethodDelete, offer, nil, nil)
		s.Equal(http.StatusOK, resp.StatusCode)
	}
	resp, data = s.do(http.MethodGet, offer, nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Contains(string(data), "OFFER_NOT_FOUND")
}

// TestBrowserView_Acceptance checks that browsers get the indented <pre> view
func (s *ExchangeAcceptanceTestSuite) TestBrowserView_Acceptance() {
	header := http.Header{"Accept": {"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"}}

	resp, data := s.do(http.MethodGet, "/orders/2", nil, header)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "text/html")

	body := string(data)
	s.True(strings.HasPrefix(body, "<pre>"), body)
	s.True(strings.HasSuffix(body, "</pre>"), body)
	s.Contains(body, "\n    &#34;name&#34;: &#34;Paint fence&#34;")

	resp, data = s.do(http.MethodGet, "/orders/2", nil, http.Header{"Accept": {"application/json"}})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"id":2,"name":"Paint fence","description":"Twenty metres of wooden fence, white paint provided"}`, string(data))
}

// TestMalformedRequests_Acceptance checks the error envelope for bad input
func (s *ExchangeAcceptanceTestSuite) TestMalformedRequests_Acceptance() {
	cases := []struct {
		method, path, body string
		status             int
		code               string
	}{
		{http.MethodGet, "/users/abc", "", http.StatusBadRequest, "INVALID_ID"},
		{http.MethodPut, "/orders/1", "[1,2]", http.StatusBadRequest, "VALIDATION_ERROR"},
		{http.MethodPost, "/offers", "{", http.StatusBadRequest, "VALIDATION_ERROR"},
		{http.MethodPost, "/users", `{"id":1,"first_name":"Clash"}`, http.StatusConflict, "USER_EXISTS"},
	}

	for _, tc := range cases {
		req, err := http.NewRequest(tc.method, s.server.URL+tc.path, strings.NewReader(tc.body))
		s.Require().NoError(err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		s.Require().NoError(err)

		var envelope struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		s.NoError(json.NewDecoder(resp.Body).Decode(&envelope))
		resp.Body.Close()

		s.Equal(tc.status, resp.StatusCode, "%s %s", tc.method, tc.path)
		s.False(envelope.Success)
		s.Equal(tc.code, envelope.Error.Code, "%s %s", tc.method, tc.path)
	}
}

func TestExchangeAcceptanceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeAcceptanceTestSuite))
}

func mustUint(s string) uint {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		panic(err)
	}
	return uint(n)
}
