package redfish

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rackops/fwctl/internal/protocol"

	"github.com/stmcginnis/gofish"
	gfredfish "github.com/stmcginnis/gofish/redfish"
)

// The typed gofish resources cover the common collections well, but
// several of the payloads we need are vendor-shaped. For those we
// decode fixed endpoints into the minimal local structures below.

type updateServiceBody struct {
	ServiceEnabled       bool   `json:"ServiceEnabled"`
	HTTPPushURI          string `json:"HttpPushUri"`
	MultipartHTTPPushURI string `json:"MultipartHttpPushUri"`
	Actions              struct {
		SimpleUpdate struct {
			Target string `json:"target"`
		} `json:"#UpdateService.SimpleUpdate"`
	} `json:"Actions"`
}

type collectionBody struct {
	Members []struct {
		ODataID string `json:"@odata.id"`
	} `json:"Members"`
}

type taskBody struct {
	ID        string `json:"Id"`
	Name      string `json:"Name"`
	TaskState string `json:"TaskState"`
}

// getJSON fetches an endpoint and decodes it into out
func getJSON(api *gofish.APIClient, endpoint string, out interface{}) error {
	resp, err := api.Get(endpoint)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status code %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}

// updateService reads the update service resource
func updateService(api *gofish.APIClient) (*updateServiceBody, error) {
	us := &updateServiceBody{}

	if err := getJSON(api, updateServiceEndpoint, us); err != nil {
		return nil, err
	}

	return us, nil
}

// updateModes derives the delivery modes the controller accepts from
// what the update service advertises
func (c *Client) updateModes(api *gofish.APIClient) []protocol.UpdateMode {
	us, err := updateService(api)

	if err != nil || !us.ServiceEnabled {
		return nil
	}

	modes := []protocol.UpdateMode{}

	if us.Actions.SimpleUpdate.Target != "" {
		modes = append(modes, protocol.ModeSimpleImage, protocol.ModeInstallFromRepo)
	}

	if us.HTTPPushURI != "" || us.MultipartHTTPPushURI != "" {
		modes = append(modes, protocol.ModeMultipart)
	}

	return modes
}

// jobQueueStatus walks the task collection and classifies the queue
func jobQueueStatus(api *gofish.APIClient) (protocol.QueueStatus, error) {
	collection := &collectionBody{}

	if err := getJSON(api, taskListEndpoint, collection); err != nil {
		return protocol.QueueUnknown, err
	}

	jobs := []protocol.JobSummary{}

	for _, member := range collection.Members {
		task := &taskBody{}

		if err := getJSON(api, member.ODataID, task); err != nil {
			return protocol.QueueUnknown, err
		}

		jobs = append(jobs, protocol.JobSummary{
			ID:    task.ID,
			Name:  task.Name,
			State: task.TaskState,
		})
	}

	return protocol.ClassifyJobQueue(jobs), nil
}

// countEnabledFeatures approximates the licensed feature surface from
// the resources the manager exposes. The tier is inferred from the
// count when no explicit license is advertised.
func countEnabledFeatures(api *gofish.APIClient, manager *gfredfish.Manager) int {
	count := 0

	if manager.GraphicalConsole.ServiceEnabled {
		count++
	}

	if manager.SerialConsole.ServiceEnabled {
		count++
	}

	if manager.CommandShell.ServiceEnabled {
		count++
	}

	us, err := updateService(api)

	if err == nil {
		if us.ServiceEnabled {
			count++
		}

		if us.HTTPPushURI != "" {
			count++
		}

		if us.MultipartHTTPPushURI != "" {
			count++
		}
	}

	interfaces, err := manager.EthernetInterfaces()

	if err == nil {
		count += len(interfaces)
	}

	if virtualMedia, err := manager.VirtualMedia(); err == nil {
		count += len(virtualMedia)
	}

	return count
}
