package soap_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/protocol"
	"github.com/rackops/fwctl/internal/soap"

	"github.com/stretchr/testify/assert"
)

const envelopeFormat = `<?xml version="1.0" encoding="UTF-8"?>
<Envelope xmlns="http://www.w3.org/2003/05/soap-envelope"><Body>%s</Body></Envelope>`

// fakeService emulates the legacy management service. Responses are
// keyed by SOAPAction; unknown actions fault.
type fakeService struct {
	responses map[string]string
	status    int
	jobState  *atomic.Value
	requests  []string
}

func newFakeService() *fakeService {
	state := &atomic.Value{}
	state.Store("Running")

	return &fakeService{
		status:   http.StatusOK,
		jobState: state,
		responses: map[string]string{
			"Identify": `<IdentifyResponse>
				<FirmwareVersion>2.65.65.65</FirmwareVersion>
				<Model>PowerEdge R740</Model>
				<EnabledFeatures>7</EnabledFeatures>
			</IdentifyResponse>`,
			"InstallFromRepository": `<InstallFromRepositoryResponse>
				<JobID>JID_001</JobID>
			</InstallFromRepositoryResponse>`,
		},
	}
}

func (f *fakeService) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		action := r.Header.Get("SOAPAction")

		body, _ := io.ReadAll(r.Body)
		f.requests = append(f.requests, string(body))

		if f.status != http.StatusOK {
			w.WriteHeader(f.status)
			return
		}

		if action == "GetJob" {
			fmt.Fprintf(w, envelopeFormat, fmt.Sprintf(
				`<GetJobResponse><JobID>JID_001</JobID><State>%s</State></GetJobResponse>`,
				f.jobState.Load().(string),
			))
			return
		}

		response, ok := f.responses[action]

		if !ok {
			fmt.Fprintf(w, envelopeFormat,
				`<Fault><Code><Value>Sender</Value></Code><Reason><Text>unknown action</Text></Reason></Fault>`)
			return
		}

		fmt.Fprintf(w, envelopeFormat, response)
	}))
}

func testConf() config.Protocols {
	return config.Protocols{
		CallTimeout:     5 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
		PollInterval:    time.Millisecond,
		PollMaxAttempts: 50,
	}
}

func newTestClient(url string) *soap.Client {
	client := soap.NewClient(testConf())
	client.SetEndpointResolver(func(string, int) string { return url })
	return client
}

func TestClient(t *testing.T) {
	t.Run("detects capability with repository install mode only", func(st *testing.T) {
		service := newFakeService()
		server := service.server()
		defer server.Close()

		client := newTestClient(server.URL)

		capability := client.DetectCapability(
			context.Background(),
			protocol.ServerIdentity{Host: "10.0.0.5"},
			protocol.Credentials{Username: "root"},
		)

		assert.True(st, capability.Supported)
		assert.Equal(st, protocol.Soap, capability.Protocol)
		assert.Equal(st, "2.65.65.65", capability.FirmwareVersion)
		assert.Equal(st, protocol.Gen11, capability.Generation)
		assert.Equal(st, protocol.LicenseEnterprise, capability.LicenseTier)
		assert.Equal(st, []protocol.UpdateMode{protocol.ModeInstallFromRepo}, capability.UpdateModes)
	})

	t.Run("rejected credentials classify as authentication", func(st *testing.T) {
		service := newFakeService()
		service.status = http.StatusUnauthorized
		server := service.server()
		defer server.Close()

		client := newTestClient(server.URL)

		capability := client.DetectCapability(
			context.Background(),
			protocol.ServerIdentity{Host: "10.0.0.5"},
			protocol.Credentials{},
		)

		assert.False(st, capability.Supported)
		assert.Contains(st, capability.Diagnostic, "401")
	})

	t.Run("health check reports unreachable when service is down", func(st *testing.T) {
		service := newFakeService()
		server := service.server()
		server.Close()

		client := newTestClient(server.URL)

		health := client.HealthCheck(
			context.Background(),
			protocol.ServerIdentity{Host: "10.0.0.5"},
			protocol.Credentials{},
		)

		assert.Equal(st, protocol.Unreachable, health.Status)
		assert.Equal(st, string(exception.KindTransient), health.ErrorKind)
	})

	t.Run("stages a repository install and returns the job", func(st *testing.T) {
		service := newFakeService()
		server := service.server()
		defer server.Close()

		client := newTestClient(server.URL)

		result, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host:          "10.0.0.5",
			Mode:          protocol.ModeInstallFromRepo,
			RepositoryURL: "https://repo.local/catalog",
		})

		assert.NoError(st, err)
		assert.Equal(st, protocol.StatusQueued, result.Status)
		assert.Equal(st, "JID_001", result.TaskRef)
		assert.True(st, strings.Contains(service.requests[0], "https://repo.local/catalog"))
	})

	t.Run("refuses modes other than repository install", func(st *testing.T) {
		client := soap.NewClient(testConf())

		_, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host: "10.0.0.5",
			Mode: protocol.ModeMultipart,
		})

		assert.Error(st, err)
		assert.ErrorIs(st, err, exception.ErrUnsupportedMode)
		assert.Equal(st, exception.KindPermanent, exception.KindOf(err))
	})

	t.Run("sender faults are permanent", func(st *testing.T) {
		service := newFakeService()
		delete(service.responses, "InstallFromRepository")
		server := service.server()
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host:          "10.0.0.5",
			Mode:          protocol.ModeInstallFromRepo,
			RepositoryURL: "https://repo.local/catalog",
		})

		assert.Error(st, err)
		assert.Equal(st, exception.KindPermanent, exception.KindOf(err))
	})

	t.Run("receiver faults are transient", func(st *testing.T) {
		service := newFakeService()
		service.responses["InstallFromRepository"] =
			`<Fault><Code><Value>Receiver</Value></Code><Reason><Text>busy</Text></Reason></Fault>`
		server := service.server()
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host:          "10.0.0.5",
			Mode:          protocol.ModeInstallFromRepo,
			RepositoryURL: "https://repo.local/catalog",
		})

		assert.Error(st, err)
		assert.Equal(st, exception.KindTransient, exception.KindOf(err))
	})

	t.Run("tracks a job to completion", func(st *testing.T) {
		service := newFakeService()
		server := service.server()
		defer server.Close()

		client := newTestClient(server.URL)

		go func() {
			time.Sleep(3 * time.Millisecond)
			service.jobState.Store("Completed")
		}()

		result, err := client.TrackTask(
			context.Background(),
			&protocol.UpdateRequest{Host: "10.0.0.5"},
			"JID_001",
		)

		assert.NoError(st, err)
		assert.Equal(st, protocol.StatusCompleted, result.Status)
	})

	t.Run("failed jobs surface as permanent errors", func(st *testing.T) {
		service := newFakeService()
		service.jobState.Store("Failed")
		server := service.server()
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.TrackTask(
			context.Background(),
			&protocol.UpdateRequest{Host: "10.0.0.5"},
			"JID_001",
		)

		assert.Error(st, err)
		assert.Equal(st, exception.KindPermanent, exception.KindOf(err))
	})
}
