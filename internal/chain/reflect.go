package chain

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	rpb "google.golang.org/grpc/reflection/grpc_reflection_v1alpha"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// descriptorResolver loads service descriptors from the node's reflection service.
type descriptorResolver struct {
	client rpb.ServerReflectionClient

	mu    sync.Mutex
	files *protoregistry.Files
}

func newDescriptorResolver(conn grpc.ClientConnInterface) *descriptorResolver {
	return &descriptorResolver{
		client: rpb.NewServerReflectionClient(conn),
		files:  new(protoregistry.Files),
	}
}

func (r *descriptorResolver) methodOutput(ctx context.Context, service, method string) (protoreflect.MessageDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lookup := chainedResolver{r.files, protoregistry.GlobalFiles}
	desc, err := lookup.FindDescriptorByName(protoreflect.FullName(service))
	if err != nil {
		if err := r.load(ctx, service); err != nil {
			return nil, err
		}
		desc, err = lookup.FindDescriptorByName(protoreflect.FullName(service))
		if err != nil {
			return nil, fmt.Errorf("service %s not found after reflection: %w", service, err)
		}
	}
	svc, ok := desc.(protoreflect.ServiceDescriptor)
	if !ok {
		return nil, fmt.Errorf("%s is not a service", service)
	}
	m := svc.Methods().ByName(protoreflect.Name(method))
	if m == nil {
		return nil, fmt.Errorf("method %s not found on %s", method, service)
	}
	return m.Output(), nil
}

// load fetches the file declaring symbol plus its dependencies and registers them.
func (r *descriptorResolver) load(ctx context.Context, symbol string) error {
	stream, err := r.client.ServerReflectionInfo(ctx)
	if err != nil {
		return fmt.Errorf("open reflection stream: %w", err)
	}
	defer stream.CloseSend()

	pending := map[string]*descriptorpb.FileDescriptorProto{}
	requested := map[string]bool{}
	request := &rpb.ServerReflectionRequest{
		MessageRequest: &rpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: symbol},
	}
	for request != nil {
		if err := stream.Send(request); err != nil {
			return fmt.Errorf("reflection send: %w", err)
		}
		resp, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("reflection recv: %w", err)
		}
		if errResp := resp.GetErrorResponse(); errResp != nil && request.GetFileByFilename() == "" {
			return fmt.Errorf("reflection error %d: %s", errResp.GetErrorCode(), errResp.GetErrorMessage())
		}
		for _, raw := range resp.GetFileDescriptorResponse().GetFileDescriptorProto() {
			fd := new(descriptorpb.FileDescriptorProto)
			if err := proto.Unmarshal(raw, fd); err != nil {
				return fmt.Errorf("decode file descriptor: %w", err)
			}
			pending[fd.GetName()] = fd
		}

		request = nil
		if missing := r.missingDeps(pending, requested); len(missing) > 0 {
			requested[missing[0]] = true
			request = &rpb.ServerReflectionRequest{
				MessageRequest: &rpb.ServerReflectionRequest_FileByFilename{FileByFilename: missing[0]},
			}
		}
	}

	for name := range pending {
		if err := r.register(name, pending); err != nil {
			return err
		}
	}
	return nil
}

// missingDeps skips files already asked for once; those stay unresolvable placeholders.
func (r *descriptorResolver) missingDeps(pending map[string]*descriptorpb.FileDescriptorProto, requested map[string]bool) []string {
	var missing []string
	for _, fd := range pending {
		for _, dep := range fd.GetDependency() {
			if _, ok := pending[dep]; ok {
				continue
			}
			if requested[dep] || r.known(dep) {
				continue
			}
			missing = append(missing, dep)
		}
	}
	return missing
}

func (r *descriptorResolver) known(path string) bool {
	if _, err := r.files.FindFileByPath(path); err == nil {
		return true
	}
	_, err := protoregistry.GlobalFiles.FindFileByPath(path)
	return err == nil
}

// register adds a file after its dependencies. Well-known types come from the
// global registry so dynamic messages share their Go implementations.
func (r *descriptorResolver) register(name string, pending map[string]*descriptorpb.FileDescriptorProto) error {
	if r.known(name) {
		return nil
	}
	fd := pending[name]
	for _, dep := range fd.GetDependency() {
		if _, ok := pending[dep]; ok {
			if err := r.register(dep, pending); err != nil {
				return err
			}
		}
	}
	file, err := protodesc.FileOptions{AllowUnresolvable: true}.New(fd, chainedResolver{r.files, protoregistry.GlobalFiles})
	if err != nil {
		return fmt.Errorf("build descriptor %s: %w", name, err)
	}
	if err := r.files.RegisterFile(file); err != nil {
		return fmt.Errorf("register descriptor %s: %w", name, err)
	}
	return nil
}

type chainedResolver []*protoregistry.Files

func (c chainedResolver) FindFileByPath(path string) (protoreflect.FileDescriptor, error) {
	for _, files := range c {
		if fd, err := files.FindFileByPath(path); err == nil {
			return fd, nil
		}
	}
	return nil, protoregistry.NotFound
}

func (c chainedResolver) FindDescriptorByName(name protoreflect.FullName) (protoreflect.Descriptor, error) {
	for _, files := range c {
		if d, err := files.FindDescriptorByName(name); err == nil {
			return d, nil
		}
	}
	return nil, protoregistry.NotFound
}
