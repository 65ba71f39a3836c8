// Response helpers grounded on the teacher's server/response.go: an
// EndpointResult value built by jsonOK/jsonBadRequest/jsonUnauthorized/
// jsonInternalServerError and written by writeResponse, which logs every response via log.Printf the way
// logHttpResponse does.
package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the JSON body of any non-2xx response.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// EndpointResult is the return value of every endpoint handler. It carries
// enough information for writeResponse to log and write the HTTP response
// uniformly.
type EndpointResult struct {
	status      int
	resp        interface{}
	internalMsg string
	isErr       bool
}

func jsonOK(resp interface{}, internalMsg string) EndpointResult {
	return EndpointResult{status: http.StatusOK, resp: resp, internalMsg: internalMsg}
}

func jsonBadRequest(requestID, userMsg, internalMsg string) EndpointResult {
	return EndpointResult{
		status:      http.StatusBadRequest,
		resp:        ErrorResponse{RequestID: requestID, Error: userMsg},
		internalMsg: internalMsg,
		isErr:       true,
	}
}

func jsonUnauthorized(requestID, userMsg, internalMsg string) EndpointResult {
	if userMsg == "" {
		userMsg = "you are not authorized to do that"
	}
	return EndpointResult{
		status:      http.StatusUnauthorized,
		resp:        ErrorResponse{RequestID: requestID, Error: userMsg},
		internalMsg: internalMsg,
		isErr:       true,
	}
}

func jsonInternalServerError(requestID, internalMsg string) EndpointResult {
	return EndpointResult{
		status:      http.StatusInternalServerError,
		resp:        ErrorResponse{RequestID: requestID, Error: "an internal server error occurred"},
		internalMsg: internalMsg,
		isErr:       true,
	}
}

// writeResponse marshals r.resp as JSON and writes it along with r.status,
// logging the outcome the way the teacher's logHttpResponse does.
func (r EndpointResult) writeResponse(w http.ResponseWriter, req *http.Request, requestID string) {
	data, err := json.Marshal(r.resp)
	if err != nil {
		log.Printf("ERROR %s %s: could not marshal JSON response: %v", req.Method, req.URL.Path, err)
		http.Error(w, "an internal server error occurred", http.StatusInternalServerError)
		return
	}

	level := "INFO"
	if r.isErr {
		level = "ERROR"
	}
	log.Printf("%s [%s] %s %s: HTTP-%d %s", level, requestID, req.Method, req.URL.Path, r.status, r.internalMsg)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", requestID)
	w.WriteHeader(r.status)
	w.Write(data)
}
