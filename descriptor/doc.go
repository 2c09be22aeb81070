// Package descriptor loads module descriptors: the beans of a module, the
// methods of each interface view with their source annotations, and the
// assembly rules that name beans explicitly.
//
// Descriptors are YAML:
//
//	name: claims.jar
//	version: 3
//	beans:
//	  - name: ClaimBean
//	    type: stateless
//	    class: com.acme.ClaimBean
//	    local: com.acme.Claim
//	    methods:
//	      local:
//	        - name: submit
//	          params: [java.lang.String]
//	          annotations:
//	            transaction: RequiresNew
//	assembly:
//	  container_transactions:
//	    - attribute: Mandatory
//	      methods:
//	        - {bean: ClaimBean, name: "*"}
//
// A missing params key leaves parameters unconstrained, while "params: []"
// matches only methods without parameters.
package descriptor
