package catalog

import "fmt"

// Registry holds every Service, keyed by name. It is the unit of persistence.
type Registry struct {
	services map[string]*Service
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]*Service),
	}
}

// AddService stores svc under its name. An existing service with the same name is
// replaced together with its films and shows; replaced reports whether that happened.
func (r *Registry) AddService(svc *Service) (replaced bool) {
	if r.services == nil {
		r.services = make(map[string]*Service)
	}
	_, replaced = r.services[svc.Name]
	r.services[svc.Name] = svc
	return replaced
}

// Service looks a service up by name.
func (r *Registry) Service(name string) (*Service, error) {
	svc, ok := r.services[name]
	if !ok {
		return nil, fmt.Errorf("service %q: %w", name, ErrNotFound)
	}
	return svc, nil
}

// RemoveService deletes the service stored under name.
func (r *Registry) RemoveService(name string) error {
	if _, ok := r.services[name]; !ok {
		return fmt.Errorf("service %q: %w", name, ErrNotFound)
	}
	delete(r.services, name)
	return nil
}

// Services returns every service in no particular order.
func (r *Registry) Services() []*Service {
	services := make([]*Service, 0, len(r.services))
	for _, svc := range r.services {
		services = append(services, svc)
	}
	return services
}

// Len returns the number of services.
func (r *Registry) Len() int {
	return len(r.services)
}
