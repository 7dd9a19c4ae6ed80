package cli

import "fmt"

func cmdHelp(args []string) error {
	fmt.Println("usage: mygit <command> [<args>]")
	fmt.Println()
	fmt.Println("Available commands:")
	fmt.Println("   init          create an empty repository")
	fmt.Println("   hash-object   compute (and optionally store) a blob's object id")
	fmt.Println("   cat-file      print an object's content, size, or kind")
	fmt.Println("   add           stage files for the next commit")
	fmt.Println("   write-tree    write a tree object from the working directory")
	fmt.Println("   ls-tree       list a tree object's entries")
	fmt.Println("   commit        create a commit from the index")
	fmt.Println("   log           show commit history")
	fmt.Println("   status        show staged, unstaged, and untracked changes")
	fmt.Println("   show          show a commit and its diff")
	fmt.Println("   checkout      restore a commit's tree, move HEAD")
	fmt.Println("   reset         unstage or roll back to a commit")
	fmt.Println("   config        get or set repository config")
	return nil
}
