package naming_test

import (
	"fmt"

	"github.com/zero-day-ai/ejbmeta/naming"
)

func ExampleNamer() {
	n, err := naming.New(naming.Identity{
		BeanName:  "Claim",
		Type:      naming.Stateless,
		Version:   naming.Version3,
		LocalHome: "com.acme.ClaimHome",
		Local:     "com.acme.Claim",
		BeanClass: "com.acme.ClaimBean",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	local, _ := n.LocalImplClassName()
	fmt.Println(local)
	fmt.Println(n.HomeBeanClassName())
	fmt.Printf("remote: %q\n", n.RemoteImplClassName())
	// Output:
	// com.acme.EJSLocalCSLClaim_06fa1a20
	// com.acme.EJSCSLClaimHomeBean_06fa1a20
	// remote: ""
}
