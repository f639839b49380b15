package redfish_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/protocol"
	"github.com/rackops/fwctl/internal/redfish"

	"github.com/stretchr/testify/assert"
)

// fakeBMC serves canned redfish payloads keyed by path. POSTs to the
// simple update action return 202 with a task location.
type fakeBMC struct {
	bodies    map[string]string
	taskState *atomic.Value
	updates   *atomic.Int64
}

func newFakeBMC() *fakeBMC {
	state := &atomic.Value{}
	state.Store("Running")

	bmc := &fakeBMC{
		bodies:    map[string]string{},
		taskState: state,
		updates:   &atomic.Int64{},
	}

	bmc.bodies["/redfish/v1/"] = `{
		"Id": "RootService",
		"Name": "Root Service",
		"RedfishVersion": "1.6.0",
		"Systems": {"@odata.id": "/redfish/v1/Systems"},
		"Managers": {"@odata.id": "/redfish/v1/Managers"},
		"Chassis": {"@odata.id": "/redfish/v1/Chassis"},
		"UpdateService": {"@odata.id": "/redfish/v1/UpdateService"},
		"Tasks": {"@odata.id": "/redfish/v1/TaskService"}
	}`

	bmc.bodies["/redfish/v1"] = bmc.bodies["/redfish/v1/"]

	bmc.bodies["/redfish/v1/Systems"] = `{
		"Members": [{"@odata.id": "/redfish/v1/Systems/1"}]
	}`

	bmc.bodies["/redfish/v1/Systems/1"] = `{
		"Id": "1",
		"PowerState": "On",
		"Storage": {"@odata.id": "/redfish/v1/Systems/1/Storage"},
		"Memory": {"@odata.id": "/redfish/v1/Systems/1/Memory"},
		"EthernetInterfaces": {"@odata.id": "/redfish/v1/Systems/1/EthernetInterfaces"}
	}`

	bmc.bodies["/redfish/v1/Managers"] = `{
		"Members": [{"@odata.id": "/redfish/v1/Managers/1"}]
	}`

	bmc.bodies["/redfish/v1/Managers/1"] = `{
		"Id": "1",
		"ManagerType": "BMC",
		"FirmwareVersion": "4.40.00.00",
		"GraphicalConsole": {"ServiceEnabled": true},
		"SerialConsole": {"ServiceEnabled": true},
		"CommandShell": {"ServiceEnabled": true}
	}`

	bmc.bodies["/redfish/v1/UpdateService"] = `{
		"ServiceEnabled": true,
		"HttpPushUri": "/redfish/v1/UpdateService/upload",
		"Actions": {
			"#UpdateService.SimpleUpdate": {
				"target": "/redfish/v1/UpdateService/Actions/UpdateService.SimpleUpdate"
			}
		}
	}`

	bmc.bodies["/redfish/v1/TaskService/Tasks"] = `{"Members": []}`

	return bmc
}

func (f *fakeBMC) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			f.updates.Add(1)
			w.Header().Set("Location", "/redfish/v1/TaskService/Tasks/42")
			w.WriteHeader(http.StatusAccepted)
			return
		}

		if r.URL.Path == "/redfish/v1/TaskService/Tasks/42" {
			body := map[string]string{
				"Id":        "42",
				"Name":      "firmware update",
				"TaskState": f.taskState.Load().(string),
			}

			json.NewEncoder(w).Encode(body)
			return
		}

		body, ok := f.bodies[r.URL.Path]

		if !ok {
			body, ok = f.bodies[strings.TrimSuffix(r.URL.Path, "/")]
		}

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
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

func newTestClient(url string) *redfish.Client {
	client := redfish.NewClient(testConf())
	client.SetConnector(redfish.FixedEndpointConnector(url))
	return client
}

func TestClient(t *testing.T) {
	t.Run("detects capability from a live endpoint", func(st *testing.T) {
		bmc := newFakeBMC()
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		capability := client.DetectCapability(
			context.Background(),
			protocol.ServerIdentity{Host: "10.0.0.5"},
			protocol.Credentials{},
		)

		assert.True(st, capability.Supported)
		assert.Equal(st, protocol.Redfish, capability.Protocol)
		assert.Equal(st, "4.40.00.00", capability.FirmwareVersion)
		assert.Equal(st, protocol.Gen13, capability.Generation)
		assert.Contains(st, capability.UpdateModes, protocol.ModeSimpleImage)
		assert.Contains(st, capability.UpdateModes, protocol.ModeInstallFromRepo)
		assert.Contains(st, capability.UpdateModes, protocol.ModeMultipart)
	})

	t.Run("detection folds connect failure into diagnostic", func(st *testing.T) {
		bmc := newFakeBMC()
		server := bmc.server()
		server.Close()

		client := newTestClient(server.URL)

		capability := client.DetectCapability(
			context.Background(),
			protocol.ServerIdentity{Host: "10.0.0.5"},
			protocol.Credentials{},
		)

		assert.False(st, capability.Supported)
		assert.NotEmpty(st, capability.Diagnostic)
	})

	t.Run("health check reports healthy with latency", func(st *testing.T) {
		bmc := newFakeBMC()
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		health := client.HealthCheck(
			context.Background(),
			protocol.ServerIdentity{Host: "10.0.0.5"},
			protocol.Credentials{},
		)

		assert.Equal(st, protocol.Healthy, health.Status)
		assert.False(st, health.CheckedAt.IsZero())
	})

	t.Run("health check reports unreachable when endpoint is down", func(st *testing.T) {
		bmc := newFakeBMC()
		server := bmc.server()
		server.Close()

		client := newTestClient(server.URL)

		health := client.HealthCheck(
			context.Background(),
			protocol.ServerIdentity{Host: "10.0.0.5"},
			protocol.Credentials{},
		)

		assert.Equal(st, protocol.Unreachable, health.Status)
	})

	t.Run("rejects simple-image request without image uri before any call", func(st *testing.T) {
		client := redfish.NewClient(testConf())

		_, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host: "10.0.0.5",
			Mode: protocol.ModeSimpleImage,
		})

		assert.Error(st, err)
		assert.Equal(st, exception.KindPermanent, exception.KindOf(err))
	})

	t.Run("rejects modes the adapter cannot deliver", func(st *testing.T) {
		client := redfish.NewClient(testConf())

		_, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host: "10.0.0.5",
			Mode: protocol.ModeOSDriver,
		})

		assert.Error(st, err)
		assert.ErrorIs(st, err, exception.ErrUnsupportedMode)
	})

	t.Run("submits simple update and returns queued task", func(st *testing.T) {
		bmc := newFakeBMC()
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		result, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host: "10.0.0.5",
			Mode: protocol.ModeSimpleImage,
			Components: []protocol.Component{
				{ID: "bios", ImageURI: "http://repo.local/bios.bin"},
			},
			ApplyTime: protocol.ApplyOnReset,
		})

		assert.NoError(st, err)
		assert.Equal(st, protocol.StatusQueued, result.Status)
		assert.Equal(st, "/redfish/v1/TaskService/Tasks/42", result.TaskRef)
		assert.Equal(st, int64(1), bmc.updates.Load())
	})

	t.Run("busy job queue blocks issuance as transient", func(st *testing.T) {
		bmc := newFakeBMC()
		bmc.bodies["/redfish/v1/TaskService/Tasks"] = `{
			"Members": [{"@odata.id": "/redfish/v1/TaskService/Tasks/42"}]
		}`
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host: "10.0.0.5",
			Mode: protocol.ModeSimpleImage,
			Components: []protocol.Component{
				{ID: "bios", ImageURI: "http://repo.local/bios.bin"},
			},
		})

		assert.Error(st, err)
		assert.ErrorIs(st, err, exception.ErrQueueNotAvailable)
		assert.Equal(st, exception.KindTransient, exception.KindOf(err))
		assert.Equal(st, int64(0), bmc.updates.Load())
	})

	t.Run("errored job queue blocks issuance as permanent", func(st *testing.T) {
		bmc := newFakeBMC()
		bmc.bodies["/redfish/v1/TaskService/Tasks"] = `{
			"Members": [{"@odata.id": "/redfish/v1/TaskService/Tasks/42"}]
		}`
		bmc.taskState.Store("Exception")
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.PerformFirmwareUpdate(context.Background(), &protocol.UpdateRequest{
			Host: "10.0.0.5",
			Mode: protocol.ModeSimpleImage,
			Components: []protocol.Component{
				{ID: "bios", ImageURI: "http://repo.local/bios.bin"},
			},
		})

		assert.Error(st, err)
		assert.Equal(st, exception.KindPermanent, exception.KindOf(err))
	})

	t.Run("tracks a task to completion", func(st *testing.T) {
		bmc := newFakeBMC()
		bmc.taskState.Store("Running")
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		go func() {
			time.Sleep(3 * time.Millisecond)
			bmc.taskState.Store("Completed")
		}()

		result, err := client.TrackTask(
			context.Background(),
			&protocol.UpdateRequest{Host: "10.0.0.5"},
			"/redfish/v1/TaskService/Tasks/42",
		)

		assert.NoError(st, err)
		assert.Equal(st, protocol.StatusCompleted, result.Status)
		assert.False(st, result.CompletedAt.IsZero())
	})

	t.Run("tracking reports a failed task as permanent", func(st *testing.T) {
		bmc := newFakeBMC()
		bmc.taskState.Store("Killed")
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.TrackTask(
			context.Background(),
			&protocol.UpdateRequest{Host: "10.0.0.5"},
			"/redfish/v1/TaskService/Tasks/42",
		)

		assert.Error(st, err)
		assert.Equal(st, exception.KindPermanent, exception.KindOf(err))
	})

	t.Run("tracking gives up after the poll budget", func(st *testing.T) {
		bmc := newFakeBMC()
		bmc.taskState.Store("Running")
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.TrackTask(
			context.Background(),
			&protocol.UpdateRequest{Host: "10.0.0.5"},
			"/redfish/v1/TaskService/Tasks/42",
		)

		assert.Error(st, err)
		assert.Equal(st, exception.KindTransient, exception.KindOf(err))
	})

	t.Run("tracking honors cancellation between polls", func(st *testing.T) {
		bmc := newFakeBMC()
		bmc.taskState.Store("Running")
		server := bmc.server()
		defer server.Close()

		client := newTestClient(server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.TrackTask(
			ctx,
			&protocol.UpdateRequest{Host: "10.0.0.5"},
			"/redfish/v1/TaskService/Tasks/42",
		)

		assert.Error(st, err)
		assert.ErrorIs(st, err, context.Canceled)
	})
}
