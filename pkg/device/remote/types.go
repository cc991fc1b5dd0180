package remote

const serviceName = "Display"

type EmptyResponse struct {
}

type DrawFrameRequest struct {
	Rows []string
}
