package constants_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/apiwiki/pkg/constants"
)

// Example_markers shows the literal markers bounding the generated region
func Example_markers() {
	doc := "intro\n" + constants.BeginMarker + "\nold\n" + constants.EndMarker + "\n"

	fmt.Println(strings.Contains(doc, constants.BeginMarker))
	fmt.Println(strings.Index(doc, constants.BeginMarker) < strings.Index(doc, constants.EndMarker))
	// Output:
	// true
	// true
}

// Example_artifact demonstrates the Maven coordinates of a generated library
func Example_artifact() {
	fmt.Printf("%s:%s%s\n", constants.GroupID, constants.ArtifactPrefix, "books")
	// Output: com.google.apis:google-api-services-books
}

// Example_retry shows the flat schedule used for the codegen check
func Example_retry() {
	delay := constants.CodegenRetryDelay
	for i := 1; i < constants.CodegenRetryTries; i++ {
		fmt.Printf("retry %d after %v\n", i, delay)
		delay = delay * time.Duration(constants.CodegenRetryBackoff)
	}
	// Output:
	// retry 1 after 1s
	// retry 2 after 1s
}
