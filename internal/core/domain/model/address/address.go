// Package address holds the shipping address value supplied by the address
// collaborator and its formatted rendering used as the order snapshot.
package address

import "fmt"

// Address is a user's shipping address as stored by the address collaborator.
type Address struct {
	LineOne string
	LineTwo string
	City    string
	Country string
	Pincode string
}

// FormatAddress renders an address as "lineOne, lineTwo, city, country-pincode".
func FormatAddress(a Address) string {
	return fmt.Sprintf("%s, %s, %s, %s-%s", a.LineOne, a.LineTwo, a.City, a.Country, a.Pincode)
}
