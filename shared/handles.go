package shared

import (
	"fmt"
	"net/url"
)

func GetHostName(actorUri string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(actorUri)
	if urlError != nil {
		return "", fmt.Errorf("failed to parse actor URI '%s': %v", actorUri, urlError)
	}
	return parsedUrl.Hostname(), nil
}

func MakeFullMoniker(hostName, handle string) string {
	return "@" + handle + "@" + hostName
}
