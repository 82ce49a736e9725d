package service

// RecipeServiceWrapper defines middleware composition for RecipeService.
// Implementations wrap an existing RecipeService to add behavior such as
// logging or validating.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService // returns a decorated RecipeService applying additional behavior
}

// GroceryServiceWrapper is the GroceryService counterpart of RecipeServiceWrapper.
type GroceryServiceWrapper interface {
	Wrap(GroceryService) GroceryService
}
