package report

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deptID = "0190a5b4-1c2d-7e3f-8a9b-0c1d2e3f4a5b"

func TestParseCustomFilter(t *testing.T) {
	tests := []struct {
		name       string
		reportType string
		filters    string
		want       CustomFilter
	}{
		{
			name:       "turnover with range",
			reportType: "turnover",
			filters:    `{"departmentId":"` + deptID + `","startDate":"2025-01-01","endDate":"2025-03-31"}`,
			want: TurnoverFilter{
				DepartmentID: ptr(deptID),
				Range: &DateRange{
					Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			name:       "skills without filters",
			reportType: "skills",
			filters:    ``,
			want:       SkillsFilter{},
		},
		{
			name:       "compensation null filters",
			reportType: "compensation",
			filters:    `null`,
			want:       CompensationFilter{},
		},
		{
			name:       "training ignores unrelated keys",
			reportType: "training",
			filters:    `{"category":"Security"}`,
			want:       TrainingFilter{},
		},
		{
			name:       "skills trims category",
			reportType: "skills",
			filters:    `{"category":"  Engineering "}`,
			want:       SkillsFilter{Category: ptr("Engineering")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCustomFilter(tt.reportType, json.RawMessage(tt.filters))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, CustomType(tt.reportType), got.CustomType())
		})
	}
}

func TestParseCustomFilter_InvalidType(t *testing.T) {
	for _, reportType := range []string{"bogus", "", "employees", "TURNOVER"} {
		_, err := ParseCustomFilter(reportType, nil)
		assert.ErrorIs(t, err, ErrInvalidReportType, reportType)
	}
}

func TestParseCustomFilter_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		filters string
		field   string
	}{
		{"not an object", `[1,2]`, "filters"},
		{"bad department", `{"departmentId":"engineering"}`, "departmentId"},
		{"half open range", `{"startDate":"2025-01-01"}`, "endDate"},
		{"reversed range", `{"startDate":"2025-02-01","endDate":"2025-01-01"}`, "endDate"},
		{"malformed date", `{"startDate":"01/02/2025","endDate":"2025-03-01"}`, "startDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCustomFilter("turnover", json.RawMessage(tt.filters))
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %v", err)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestParseExportFilter(t *testing.T) {
	got, err := ParseExportFilter("leave", json.RawMessage(`{"status":"APPROVED","type":"SICK","startDate":"2025-01-01","endDate":"2025-12-31"}`))
	require.NoError(t, err)

	lf, ok := got.(LeaveExportFilter)
	require.True(t, ok)
	require.NotNil(t, lf.Status)
	assert.Equal(t, leave.StatusApproved, *lf.Status)
	require.NotNil(t, lf.Type)
	assert.Equal(t, leave.TypeSick, *lf.Type)
	require.NotNil(t, lf.Range)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), lf.Range.EndExclusive())

	emp, err := ParseExportFilter("employees", json.RawMessage(`{"search":"jane"}`))
	require.NoError(t, err)
	assert.Equal(t, EmployeeExportFilter{Search: ptr("jane")}, emp)

	_, err = ParseExportFilter("attendance", json.RawMessage(`{"status":"SLEEPING"}`))
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "status")

	_, err = ParseExportFilter("bogus", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrInvalidReportType)

	_, err = ParseExportFilter("turnover", nil)
	assert.ErrorIs(t, err, ErrInvalidReportType)
}

func TestAttendanceStatsRequestValidate(t *testing.T) {
	req := AttendanceStatsRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"}
	r, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, 31, int(r.EndExclusive().Sub(r.Start).Hours()/24))

	_, err = (&AttendanceStatsRequest{StartDate: "2025-02-01", EndDate: "2025-01-01"}).Validate()
	assert.Error(t, err)

	_, err = (&AttendanceStatsRequest{}).Validate()
	assert.Error(t, err)
}

func TestLeaveStatsRequestValidate(t *testing.T) {
	assert.NoError(t, (&LeaveStatsRequest{Year: 2025}).Validate())
	assert.Error(t, (&LeaveStatsRequest{Year: 0}).Validate())
	assert.Error(t, (&LeaveStatsRequest{Year: time.Now().Year() + 5}).Validate())
}

func ptr[T any](v T) *T { return &v }
