package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the backend's timesheet endpoints. Responses are
// decoded against the explicit envelope; anything that does not match is
// an error, never a silent default.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// TimesheetData is the slice of the backend's timesheet payload the
// console needs.
type TimesheetData struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	WorkScheduleID string  `json:"work_schedule_id"`
	Day            string  `json:"day"`
	CheckIn        string  `json:"check_in"`
	CheckOut       *string `json:"check_out"`
	Status         string  `json:"status"`
}

type checkInPayload struct {
	Day            string `json:"day"`
	WorkScheduleID string `json:"work_schedule_id"`
	CheckIn        string `json:"check_in"`
}

type checkOutPayload struct {
	CheckOut string `json:"check_out"`
}

// CheckIn opens a timesheet for the day.
func (c *Client) CheckIn(ctx context.Context, day, workScheduleID, checkIn string) (TimesheetData, error) {
	payload := checkInPayload{Day: day, WorkScheduleID: workScheduleID, CheckIn: checkIn}
	return c.doTimesheet(ctx, http.MethodPost, c.baseURL+"/api/v1/timesheets", payload)
}

// CheckOut completes the timesheet.
func (c *Client) CheckOut(ctx context.Context, timesheetID, checkOut string) (TimesheetData, error) {
	payload := checkOutPayload{CheckOut: checkOut}
	return c.doTimesheet(ctx, http.MethodPut, c.baseURL+"/api/v1/timesheets/"+timesheetID, payload)
}

func (c *Client) doTimesheet(ctx context.Context, method, url string, payload interface{}) (TimesheetData, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return TimesheetData{}, &TransportFailure{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return TimesheetData{}, &TransportFailure{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TimesheetData{}, &TransportFailure{Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return TimesheetData{}, &TransportFailure{Err: fmt.Errorf("unreadable response: %w", err)}
	}

	if !env.Success {
		if env.Error != nil && env.Error.Code == "VALIDATION_ERROR" {
			return TimesheetData{}, &ValidationError{Fields: env.Error.Details}
		}
		rejection := &BackendRejection{StatusCode: resp.StatusCode}
		if env.Error != nil {
			rejection.Code = env.Error.Code
			rejection.Message = env.Error.Message
		}
		return TimesheetData{}, rejection
	}

	if len(env.Data) == 0 {
		return TimesheetData{}, &BackendRejection{
			StatusCode: resp.StatusCode,
			Code:       "MALFORMED_RESPONSE",
			Message:    "success response carried no data",
		}
	}

	var data TimesheetData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return TimesheetData{}, &TransportFailure{Err: fmt.Errorf("malformed timesheet payload: %w", err)}
	}
	if data.ID == "" {
		return TimesheetData{}, &BackendRejection{
			StatusCode: resp.StatusCode,
			Code:       "MALFORMED_RESPONSE",
			Message:    "timesheet payload missing id",
		}
	}

	return data, nil
}
