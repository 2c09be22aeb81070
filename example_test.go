package ejbmeta_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zero-day-ai/ejbmeta"
	"github.com/zero-day-ai/ejbmeta/descriptor"
)

func ExampleAssembler_Assemble() {
	mod, err := descriptor.Parse([]byte(`
name: claims.jar
beans:
  - name: ClaimBean
    type: stateless
    class: com.acme.ClaimBean
    local: com.acme.Claim
    local_home: com.acme.ClaimHome
    methods:
      local:
        - name: submit
          params: [java.lang.String]
          annotations:
            transaction: RequiresNew
        - name: status
    class_annotations:
      transaction: Supports
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	a, err := ejbmeta.NewAssembler(ejbmeta.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer a.Close()

	meta, err := a.Assemble(context.Background(), mod, "ClaimBean")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, m := range meta.Methods {
		fmt.Println(m.Interface, m.Method.Key(), m.Transaction)
	}
	// Output:
	// Local submit(java.lang.String) TX_REQUIRES_NEW
	// Local status() TX_SUPPORTS
}
