package attrib_test

import (
	"fmt"

	"github.com/zero-day-ai/ejbmeta/attrib"
)

func Example() {
	methods := []*attrib.Method{
		{Name: "submit", Params: []string{"java.lang.String"}, DeclaringClass: "com.acme.ClaimBean"},
		{Name: "status", Params: []string{}, DeclaringClass: "com.acme.ClaimBean"},
	}

	annotations := attrib.NewMapAnnotationSource()
	annotations.AddClass("com.acme.ClaimBean", attrib.Annotation{
		Kind:        attrib.TransactionAttributeAnnotation,
		Transaction: attrib.TxSupports,
	})

	r := attrib.NewResolver(attrib.Bean{
		Name:      "ClaimBean",
		Kind:      attrib.Stateless,
		ClassName: "com.acme.ClaimBean",
	}, attrib.WithAnnotations(annotations))

	tx := attrib.NewResolved[attrib.TxAttribute](len(methods))
	r.XMLTransactions(tx, attrib.Local, methods, []attrib.ContainerTransaction{{
		Attribute: attrib.TxRequiresNew,
		Methods:   []attrib.MethodElement{{BeanName: "ClaimBean", Name: "submit"}},
	}})
	r.AnnotationTransactions(tx, attrib.Local, methods)

	for i, m := range methods {
		fmt.Println(m.Key(), tx.Value(i))
	}
	// Output:
	// submit(java.lang.String) TX_REQUIRES_NEW
	// status() TX_SUPPORTS
}

func ExampleConvertArraySignature() {
	fmt.Println(attrib.ConvertArraySignature("[[B"))
	fmt.Println(attrib.ConvertArraySignature("[Ljava.lang.String;"))
	// Output:
	// byte[][]
	// java.lang.String[]
}
