package models

// StorageUploadResponse is the body returned by the IPFS upload service.
type StorageUploadResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// StoragePinOptions controls how the upload service pins a file.
type StoragePinOptions struct {
	WrapWithDirectory bool `json:"wrapWithDirectory"`
}
