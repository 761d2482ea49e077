package ros

//ServiceType is the interface definition of a service.
//This contains MD5Sum and Name of the service and the request and
//response message types.
//NewService instantiates a new Service object.
type ServiceType interface {
	MD5Sum() string
	Name() string
	Text() string
	RequestType() MessageType
	ResponseType() MessageType
	NewService() Service
}

//Service interface contains the Request and Response messages
type Service interface {
	ReqMessage() Message
	ResMessage() Message
}
