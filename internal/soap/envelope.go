package soap

import "encoding/xml"

// Wire shapes for the legacy management service. The request documents
// are intentionally flat; the service ignores unknown elements.

type identifyRequest struct {
	XMLName xml.Name `xml:"Identify"`
}

type identifyResponse struct {
	XMLName         xml.Name `xml:"IdentifyResponse"`
	FirmwareVersion string   `xml:"FirmwareVersion"`
	Model           string   `xml:"Model"`
	EnabledFeatures int      `xml:"EnabledFeatures"`
}

type installRequest struct {
	XMLName       xml.Name `xml:"InstallFromRepository"`
	RepositoryURI string   `xml:"RepositoryURI"`
	ApplyTime     string   `xml:"ApplyTime,omitempty"`
}

type installResponse struct {
	XMLName xml.Name `xml:"InstallFromRepositoryResponse"`
	JobID   string   `xml:"JobID"`
}

type jobRequest struct {
	XMLName xml.Name `xml:"GetJob"`
	JobID   string   `xml:"JobID"`
}

type jobResponse struct {
	XMLName xml.Name `xml:"GetJobResponse"`
	JobID   string   `xml:"JobID"`
	State   string   `xml:"State"`
	Message string   `xml:"Message"`
}

type fault struct {
	Code struct {
		Value string `xml:"Value"`
	} `xml:"Code"`
	Reason struct {
		Text string `xml:"Text"`
	} `xml:"Reason"`
}

type responseBody struct {
	Fault *fault `xml:"Fault"`
	Inner []byte `xml:",innerxml"`
}

type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}
