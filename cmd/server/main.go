// Command shoplist runs the shopping-list server and offers a terminal view
// of stored lists.
package main

func main() {
	Execute()
}
