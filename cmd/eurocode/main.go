// Command eurocode is a calculator front end for the eurocodedesign
// libraries: unit conversion, steel grade lookup and National Annex
// partial factors.
package main

func main() {
	Execute()
}
