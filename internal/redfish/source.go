package redfish

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/healthgate"
	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"

	"github.com/stmcginnis/gofish"
)

// Source implements healthgate.Source on top of the management
// controller's Redfish endpoints. The chassis payloads vary by vendor
// so thermal and power are decoded into local shapes rather than the
// typed resources.
type Source struct {
	log   logger.Logger
	conf  config.Protocols
	host  string
	creds protocol.Credentials

	connect Connector
}

// SetConnector overrides how sessions are established
func (s *Source) SetConnector(fn Connector) {
	s.connect = fn
}

// NewSource returns a health gate source bound to one host
func NewSource(conf config.Protocols, host string, creds protocol.Credentials) *Source {
	return &Source{
		log:     logger.New(),
		conf:    conf,
		host:    host,
		creds:   creds,
		connect: connect,
	}
}

type thermalBody struct {
	Temperatures []struct {
		Name                   string  `json:"Name"`
		ReadingCelsius         float64 `json:"ReadingCelsius"`
		UpperThresholdCritical float64 `json:"UpperThresholdCritical"`
	} `json:"Temperatures"`
	Fans []struct {
		Name   string `json:"Name"`
		Status struct {
			Health string `json:"Health"`
		} `json:"Status"`
	} `json:"Fans"`
}

type powerBody struct {
	PowerSupplies []struct {
		Name   string `json:"Name"`
		Status struct {
			Health string `json:"Health"`
		} `json:"Status"`
	} `json:"PowerSupplies"`
}

type systemBody struct {
	PowerState string `json:"PowerState"`
	Storage    struct {
		ODataID string `json:"@odata.id"`
	} `json:"Storage"`
	Memory struct {
		ODataID string `json:"@odata.id"`
	} `json:"Memory"`
	EthernetInterfaces struct {
		ODataID string `json:"@odata.id"`
	} `json:"EthernetInterfaces"`
}

type storageBody struct {
	Name   string `json:"Name"`
	Status statusBody
	Drives []struct {
		ODataID string `json:"@odata.id"`
	} `json:"Drives"`
	StorageControllers []struct {
		Name   string `json:"Name"`
		Status statusBody
	} `json:"StorageControllers"`
}

type statusBody struct {
	Health string `json:"Health"`
	State  string `json:"State"`
}

type namedResourceBody struct {
	Name   string `json:"Name"`
	Status statusBody
}

// Power implements healthgate.Source
func (s *Source) Power(ctx context.Context) (healthgate.PowerInfo, error) {
	api, system, _, err := s.openSystem()

	if err != nil {
		return healthgate.PowerInfo{}, err
	}

	defer api.Logout()

	info := healthgate.PowerInfo{State: system.PowerState}

	chassisPath, err := firstMember(api, "/redfish/v1/Chassis")

	if err != nil {
		return healthgate.PowerInfo{}, err
	}

	power := &powerBody{}

	if err := getJSON(api, chassisPath+"/Power", power); err != nil {
		// power state alone is enough to gate on
		s.log.Debug().Err(err).Str("host", s.host).Msg("power supply detail unavailable")
		return info, nil
	}

	for _, supply := range power.PowerSupplies {
		info.Supplies = append(info.Supplies, healthgate.PSU{
			Name:   supply.Name,
			Health: supply.Status.Health,
		})
	}

	return info, nil
}

// Thermal implements healthgate.Source
func (s *Source) Thermal(ctx context.Context) (healthgate.ThermalInfo, error) {
	api, err := s.open()

	if err != nil {
		return healthgate.ThermalInfo{}, err
	}

	defer api.Logout()

	chassisPath, err := firstMember(api, "/redfish/v1/Chassis")

	if err != nil {
		return healthgate.ThermalInfo{}, err
	}

	thermal := &thermalBody{}

	if err := getJSON(api, chassisPath+"/Thermal", thermal); err != nil {
		return healthgate.ThermalInfo{}, err
	}

	info := healthgate.ThermalInfo{}

	for _, reading := range thermal.Temperatures {
		info.Sensors = append(info.Sensors, healthgate.TemperatureSensor{
			Name:              reading.Name,
			ReadingCelsius:    reading.ReadingCelsius,
			CriticalThreshold: reading.UpperThresholdCritical,
		})
	}

	for _, fan := range thermal.Fans {
		info.Fans = append(info.Fans, healthgate.Fan{
			Name:   fan.Name,
			Health: fan.Status.Health,
		})
	}

	return info, nil
}

// Storage implements healthgate.Source
func (s *Source) Storage(ctx context.Context) (healthgate.StorageInfo, error) {
	api, system, systemPath, err := s.openSystem()

	if err != nil {
		return healthgate.StorageInfo{}, err
	}

	defer api.Logout()

	storagePath := system.Storage.ODataID

	if storagePath == "" {
		storagePath = systemPath + "/Storage"
	}

	collection := &collectionBody{}

	if err := getJSON(api, storagePath, collection); err != nil {
		return healthgate.StorageInfo{}, err
	}

	info := healthgate.StorageInfo{}

	for _, member := range collection.Members {
		storage := &storageBody{}

		if err := getJSON(api, member.ODataID, storage); err != nil {
			return healthgate.StorageInfo{}, err
		}

		controller := healthgate.Controller{
			Name:   storage.Name,
			Health: storage.Status.Health,
		}

		if len(storage.StorageControllers) > 0 {
			controller.Name = storage.StorageControllers[0].Name
			controller.Health = storage.StorageControllers[0].Status.Health
		}

		for _, driveRef := range storage.Drives {
			drive := &namedResourceBody{}

			if err := getJSON(api, driveRef.ODataID, drive); err != nil {
				return healthgate.StorageInfo{}, err
			}

			controller.Drives = append(controller.Drives, healthgate.Drive{
				Name:   drive.Name,
				Health: drive.Status.Health,
			})
		}

		info.Controllers = append(info.Controllers, controller)
	}

	return info, nil
}

// Memory implements healthgate.Source
func (s *Source) Memory(ctx context.Context) (healthgate.MemoryInfo, error) {
	api, system, systemPath, err := s.openSystem()

	if err != nil {
		return healthgate.MemoryInfo{}, err
	}

	defer api.Logout()

	memoryPath := system.Memory.ODataID

	if memoryPath == "" {
		memoryPath = systemPath + "/Memory"
	}

	collection := &collectionBody{}

	if err := getJSON(api, memoryPath, collection); err != nil {
		return healthgate.MemoryInfo{}, err
	}

	info := healthgate.MemoryInfo{}

	for _, member := range collection.Members {
		module := &namedResourceBody{}

		if err := getJSON(api, member.ODataID, module); err != nil {
			return healthgate.MemoryInfo{}, err
		}

		// only DIMMs the controller reports as Enabled count toward
		// the health evaluation; Absent and Disabled slots are skipped
		info.Modules = append(info.Modules, healthgate.MemoryModule{
			Name:    module.Name,
			Health:  module.Status.Health,
			Enabled: strings.EqualFold(module.Status.State, "Enabled"),
		})
	}

	return info, nil
}

// Network implements healthgate.Source
func (s *Source) Network(ctx context.Context) (healthgate.NetworkInfo, error) {
	api, system, systemPath, err := s.openSystem()

	if err != nil {
		return healthgate.NetworkInfo{}, err
	}

	defer api.Logout()

	nicPath := system.EthernetInterfaces.ODataID

	if nicPath == "" {
		nicPath = systemPath + "/EthernetInterfaces"
	}

	collection := &collectionBody{}

	if err := getJSON(api, nicPath, collection); err != nil {
		return healthgate.NetworkInfo{}, err
	}

	info := healthgate.NetworkInfo{}

	for _, member := range collection.Members {
		nic := &namedResourceBody{}

		if err := getJSON(api, member.ODataID, nic); err != nil {
			return healthgate.NetworkInfo{}, err
		}

		info.Interfaces = append(info.Interfaces, healthgate.NetworkInterface{
			Name:   nic.Name,
			Health: nic.Status.Health,
		})
	}

	return info, nil
}

// FirmwareReadiness implements healthgate.Source
func (s *Source) FirmwareReadiness(ctx context.Context) (healthgate.FirmwareReadiness, error) {
	api, err := s.open()

	if err != nil {
		return healthgate.FirmwareReadiness{}, err
	}

	defer api.Logout()

	queue, err := jobQueueStatus(api)

	if err != nil {
		return healthgate.FirmwareReadiness{}, err
	}

	managers, err := api.Service.Managers()

	if err != nil || len(managers) == 0 {
		return healthgate.FirmwareReadiness{}, fmt.Errorf("managers: %v", err)
	}

	manager := managers[0]

	generation := protocol.ParseGeneration(manager.FirmwareVersion)
	tier := protocol.InferLicenseTier(countEnabledFeatures(api, manager))

	return healthgate.FirmwareReadiness{
		QueueStatus:     queue,
		NetworkEligible: protocol.NetworkUpdateEligible(generation, tier),
		Generation:      generation,
		LicenseTier:     tier,
	}, nil
}

// SecurityPosture implements healthgate.Source. The certificate check
// inspects the management endpoint's presented chain directly since
// self-signed controller certs never verify against system roots.
func (s *Source) SecurityPosture(ctx context.Context) (healthgate.SecurityPosture, error) {
	cert, err := s.peekCertificate(ctx)

	if err != nil {
		return healthgate.SecurityPosture{}, err
	}

	api, err := s.open()

	if err != nil {
		return healthgate.SecurityPosture{}, err
	}

	defer api.Logout()

	tier := protocol.LicenseUnknown

	if managers, err := api.Service.Managers(); err == nil && len(managers) > 0 {
		tier = protocol.InferLicenseTier(countEnabledFeatures(api, managers[0]))
	}

	now := time.Now()

	return healthgate.SecurityPosture{
		CertificateValid:  now.After(cert.NotBefore) && now.Before(cert.NotAfter),
		CertificateExpiry: cert.NotAfter,
		LicenseTier:       tier,
	}, nil
}

// peekCertificate grabs the leaf certificate the controller presents
func (s *Source) peekCertificate(ctx context.Context) (*x509.Certificate, error) {
	address := s.host

	if !strings.Contains(address, ":") {
		address = net.JoinHostPort(address, "443")
	}

	dialer := &tls.Dialer{
		Config: &tls.Config{InsecureSkipVerify: true},
	}

	conn, err := dialer.DialContext(ctx, "tcp", address)

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()

	if len(state.PeerCertificates) == 0 {
		return nil, fmt.Errorf("no certificate presented by %s", address)
	}

	return state.PeerCertificates[0], nil
}

func (s *Source) open() (*gofish.APIClient, error) {
	return s.connect(s.host, s.creds, s.conf.CallTimeout)
}

// openSystem opens a session and resolves the first computer system
func (s *Source) openSystem() (*gofish.APIClient, *systemBody, string, error) {
	api, err := s.open()

	if err != nil {
		return nil, nil, "", err
	}

	systemPath, err := firstMember(api, "/redfish/v1/Systems")

	if err != nil {
		api.Logout()
		return nil, nil, "", err
	}

	system := &systemBody{}

	if err := getJSON(api, systemPath, system); err != nil {
		api.Logout()
		return nil, nil, "", err
	}

	return api, system, systemPath, nil
}

// firstMember resolves the first entry of a collection endpoint
func firstMember(api *gofish.APIClient, endpoint string) (string, error) {
	collection := &collectionBody{}

	if err := getJSON(api, endpoint, collection); err != nil {
		return "", err
	}

	if len(collection.Members) == 0 {
		return "", fmt.Errorf("%s: empty collection", endpoint)
	}

	return collection.Members[0].ODataID, nil
}
