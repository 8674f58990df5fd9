// Package discovery loads the network discovery JSON document.
package discovery

import "github.com/shankarnarayanb/aws-network-visualizer/model"

type service struct{}

// Service is the interface for loading discovery documents.
type Service interface {
	Load(path string) (model.Discovery, error)
}

// NewService creates a new discovery loading service.
func NewService() Service {
	return &service{}
}
