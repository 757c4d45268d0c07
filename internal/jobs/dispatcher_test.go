package jobs

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/jenkins-relay/internal/config"
	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/jenkins"
	"github.com/sevigo/jenkins-relay/internal/metrics"
	"github.com/sevigo/jenkins-relay/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testConfig(baseURL, suffix string) *config.Config {
	return &config.Config{
		Jenkins: config.JenkinsConfig{
			BaseURL: baseURL,
			User:    "relay",
			Token:   "token",
			Suffix:  suffix,
			Timeout: 2 * time.Second,
		},
		MaxConcurrentCommands: 2,
	}
}

func fullRecord() core.ParameterRecord {
	return core.ParameterRecord{
		Product:     core.StringPtr("Checkout"),
		Type:        core.StringPtr("API"),
		Suite:       core.StringPtr("Smoke"),
		Environment: core.StringPtr("staging"),
	}
}

func TestJobName(t *testing.T) {
	tests := []struct {
		name   string
		record core.ParameterRecord
		want   string
	}{
		{name: "all fields in fixed order", record: fullRecord(), want: "Checkout_API_Smoke_staging"},
		{
			name: "missing environment renders placeholder",
			record: core.ParameterRecord{
				Product: core.StringPtr("Checkout"),
				Type:    core.StringPtr("API"),
				Suite:   core.StringPtr("Smoke"),
			},
			want: "Checkout_API_Smoke_None",
		},
		{name: "empty record", record: core.EmptyRecord(), want: "None_None_None_None"},
		{
			name: "empty string is kept as is",
			record: core.ParameterRecord{
				Product:     core.StringPtr(""),
				Type:        core.StringPtr("UI"),
				Suite:       core.StringPtr("Regression"),
				Environment: core.StringPtr("prod"),
			},
			want: "_UI_Regression_prod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JobName(tt.record))
		})
	}
}

func TestDispatcher_Plan(t *testing.T) {
	t.Run("parameterized", func(t *testing.T) {
		d := NewDispatcher(testConfig("https://jenkins.example.com/job/", config.ParameterizedSuffix), nil, nil, testLogger())

		inv := d.Plan(fullRecord())
		assert.Equal(t, "Checkout_API_Smoke_staging", inv.JobName)
		assert.Equal(t, "https://jenkins.example.com/job/Checkout_API_Smoke_staging/buildWithParameters", inv.TargetURL)
		assert.True(t, inv.UseParameterizedBuild)
		assert.Equal(t, map[string]string{
			"product":     "Checkout",
			"type":        "API",
			"suite":       "Smoke",
			"environment": "staging",
		}, inv.Parameters)
	})

	t.Run("plain build carries no parameters", func(t *testing.T) {
		d := NewDispatcher(testConfig("https://jenkins.example.com/job/", config.PlainSuffix), nil, nil, testLogger())

		inv := d.Plan(fullRecord())
		assert.Equal(t, "https://jenkins.example.com/job/Checkout_API_Smoke_staging/build", inv.TargetURL)
		assert.False(t, inv.UseParameterizedBuild)
		assert.Empty(t, inv.Parameters)
	})

	t.Run("nil fields are omitted from parameters", func(t *testing.T) {
		d := NewDispatcher(testConfig("https://j/job/", config.ParameterizedSuffix), nil, nil, testLogger())

		inv := d.Plan(core.ParameterRecord{Product: core.StringPtr("Checkout")})
		assert.Equal(t, "Checkout_None_None_None", inv.JobName)
		assert.Equal(t, map[string]string{"product": "Checkout"}, inv.Parameters)
	})
}

func TestDispatcher_Dispatch_Classification(t *testing.T) {
	testCases := []struct {
		name        string
		mockSetup   func(c *mocks.MockClient)
		wantSuccess bool
		wantStatus  string
		wantParts   []string
		checkErr    func(t *testing.T, err error)
	}{
		{
			name: "200 is success",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(&jenkins.Response{StatusCode: 200}, nil)
			},
			wantSuccess: true,
			wantStatus:  "200",
			wantParts:   []string{"triggered successfully", "Checkout_API_Smoke_staging"},
			checkErr:    func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "201 is success",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(&jenkins.Response{StatusCode: 201}, nil)
			},
			wantSuccess: true,
			wantStatus:  "201",
			wantParts:   []string{"Checkout_API_Smoke_staging"},
			checkErr:    func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "500 reports status and body verbatim",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(&jenkins.Response{StatusCode: 500, Body: "Queue full"}, nil)
			},
			wantStatus: "500",
			wantParts:  []string{"500", "Queue full"},
			checkErr: func(t *testing.T, err error) {
				var httpErr *core.DispatchHTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, 500, httpErr.StatusCode)
				assert.Equal(t, "Queue full", httpErr.Body)
			},
		},
		{
			name: "202 is not treated as success",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(&jenkins.Response{StatusCode: 202, Body: "queued"}, nil)
			},
			wantStatus: "202",
			wantParts:  []string{"Jenkins failed (202): queued"},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorAs(t, err, new(*core.DispatchHTTPError))
			},
		},
		{
			name: "transport failure reports the cause",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
			},
			wantStatus: "-",
			wantParts:  []string{"Error triggering Jenkins", "connection refused"},
			checkErr: func(t *testing.T, err error) {
				var transportErr *core.DispatchTransportError
				require.ErrorAs(t, err, &transportErr)
				assert.Contains(t, transportErr.URL, "Checkout_API_Smoke_staging")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tc.mockSetup(client)

			d := NewDispatcher(testConfig("https://jenkins/job/", config.ParameterizedSuffix), client, metrics.New(), testLogger())
			outcome := d.Dispatch(t.Context(), fullRecord())

			assert.Equal(t, tc.wantSuccess, outcome.Success)
			assert.Equal(t, tc.wantStatus, outcome.Status())
			assert.Equal(t, "Checkout_API_Smoke_staging", outcome.JobName)
			for _, part := range tc.wantParts {
				assert.Contains(t, outcome.Message, part)
			}
			tc.checkErr(t, outcome.Err)
		})
	}
}

func TestDispatcher_Dispatch_SendsPlannedInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	d := NewDispatcher(testConfig("https://jenkins/job/", config.ParameterizedSuffix), client, nil, testLogger())
	want := d.Plan(fullRecord())
	client.EXPECT().Trigger(gomock.Any(), want).Return(&jenkins.Response{StatusCode: 201}, nil).Times(1)

	outcome := d.Dispatch(t.Context(), fullRecord())
	assert.True(t, outcome.Success)
}

func TestDispatcher_Dispatch_AgainstJenkinsStub(t *testing.T) {
	var gotPath, gotProduct string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotProduct = r.URL.Query().Get("product")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("  Queue full\n\t"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL+"/job/", config.ParameterizedSuffix)
	client, err := jenkins.NewClient(testLogger(), jenkins.WithBasicAuth(cfg.Jenkins.User, cfg.Jenkins.Token), jenkins.WithTimeout(cfg.Jenkins.Timeout))
	require.NoError(t, err)

	outcome := NewDispatcher(cfg, client, nil, testLogger()).Dispatch(t.Context(), fullRecord())

	assert.False(t, outcome.Success)
	assert.Equal(t, "⚠️ Jenkins failed (500):   Queue full\n\t", outcome.Message)
	assert.Equal(t, "/job/Checkout_API_Smoke_staging/buildWithParameters", gotPath)
	assert.Equal(t, "Checkout", gotProduct)
}

func TestDispatcher_Dispatch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/job/"
	srv.Close()

	client, err := jenkins.NewClient(testLogger(), jenkins.WithTimeout(time.Second))
	require.NoError(t, err)

	outcome := NewDispatcher(testConfig(base, config.ParameterizedSuffix), client, nil, testLogger()).Dispatch(t.Context(), fullRecord())

	assert.False(t, outcome.Success)
	assert.Nil(t, outcome.StatusCode)
	assert.Contains(t, outcome.Message, "⚠️ Error triggering Jenkins:")
	assert.Contains(t, outcome.Message, "connection refused")
}

func TestDispatcher_Dispatch_MalformedURL(t *testing.T) {
	client, err := jenkins.NewClient(testLogger(), jenkins.WithTimeout(time.Second))
	require.NoError(t, err)

	outcome := NewDispatcher(testConfig("://not a url/", config.ParameterizedSuffix), client, nil, testLogger()).Dispatch(t.Context(), fullRecord())

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, "Error triggering Jenkins")
	assert.ErrorAs(t, outcome.Err, new(*core.DispatchTransportError))
}
