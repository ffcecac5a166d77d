package meal_test

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/entities"
	"TrackFit-Backend/internal/testutil"
	"TrackFit-Backend/pkg/food"
	"TrackFit-Backend/pkg/meal"
	"TrackFit-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	testDate     = "2026-02-20"
	fakeS3Prefix = "https://cdn.test/"
)

type fakeS3 struct {
	uploaded []string
	deleted  []string
}

func (f *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName + ".png"
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return fakeS3Prefix + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, fakeS3Prefix) {
		return ""
	}
	return strings.TrimPrefix(link, fakeS3Prefix)
}

type fixture struct {
	svc   meal.MealService
	repo  meal.MealRepository
	s3    *fakeS3
	rice  *entities.Food
	bread *entities.Food
	user  string
	other string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	foodRepo := food.NewFoodRepository(db)
	mealRepo := meal.NewMealRepository(db)
	s3 := &fakeS3{}

	rice := &entities.Food{
		NameHe:           "אורז",
		NameEn:           "Rice",
		Calories:         200,
		Protein:          2.2,
		Carbs:            28,
		Fat:              0.3,
		MeasurementUnits: []entities.FoodMeasurementUnit{{Unit: "spoon", Grams: 15}},
	}
	if err := foodRepo.CreateFood(context.Background(), rice); err != nil {
		t.Fatalf("seed food: %v", err)
	}
	breadImage := "https://img.test/bread.png"
	bread := &entities.Food{
		NameHe:   "לחם",
		NameEn:   "Bread",
		Calories: 250,
		Protein:  9,
		Carbs:    49,
		Fat:      3.2,
		ImageURL: &breadImage,
	}
	if err := foodRepo.CreateFood(context.Background(), bread); err != nil {
		t.Fatalf("seed food: %v", err)
	}

	return &fixture{
		svc:   meal.NewMealService(mealRepo, foodRepo, s3),
		repo:  mealRepo,
		s3:    s3,
		rice:  rice,
		bread: bread,
		user:  uuid.NewString(),
		other: uuid.NewString(),
	}
}

func intPtr(v int) *int { return &v }

func manualMeal(name string) domain.AddMealRequest {
	return domain.AddMealRequest{
		Date:     testDate,
		Name:     name,
		Calories: intPtr(300),
		Protein:  intPtr(20),
		Carbs:    intPtr(30),
		Fat:      intPtr(10),
	}
}

func TestAddMealNumbersDefaultGroups(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	first, err := fx.svc.AddMeal(ctx, fx.user, manualMeal("Toast"))
	if err != nil {
		t.Fatalf("add first meal: %v", err)
	}
	second, err := fx.svc.AddMeal(ctx, fx.user, manualMeal("Salad"))
	if err != nil {
		t.Fatalf("add second meal: %v", err)
	}
	if first.MealGroupID == second.MealGroupID {
		t.Fatalf("expected a new group for each meal without a group")
	}

	named := manualMeal("Eggs")
	named.MealGroupName = "Breakfast"
	a, err := fx.svc.AddMeal(ctx, fx.user, named)
	if err != nil {
		t.Fatalf("add named meal: %v", err)
	}
	named.Name = "Coffee"
	b, err := fx.svc.AddMeal(ctx, fx.user, named)
	if err != nil {
		t.Fatalf("add named meal: %v", err)
	}
	if a.MealGroupID != b.MealGroupID {
		t.Fatalf("expected meals of the same named group to share it")
	}

	groups, err := fx.svc.GetMealsForDate(ctx, fx.user, testDate)
	if err != nil {
		t.Fatalf("get meals: %v", err)
	}
	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	if strings.Join(names, ",") != "Meal 1,Meal 2,Breakfast" {
		t.Fatalf("unexpected groups: %v", names)
	}
	if groups[2].Totals != (nutrition.Nutrition{Calories: 600, Protein: 40, Carbs: 60, Fat: 20}) {
		t.Fatalf("unexpected breakfast totals: %+v", groups[2].Totals)
	}
}

func TestAddMealFromFood(t *testing.T) {
	fx := newFixture(t)
	weight := 2.5

	res, err := fx.svc.AddMeal(context.Background(), fx.user, domain.AddMealRequest{
		Date:   testDate,
		FoodID: fx.rice.ID.String(),
		Weight: &weight,
		Unit:   "spoon",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Name != "אורז" || res.Calories != 75 || res.Carbs != 11 || res.Unit != "spoon" {
		t.Fatalf("unexpected meal: %+v", res)
	}

	_, err = fx.svc.AddMeal(context.Background(), fx.user, domain.AddMealRequest{
		Date:   testDate,
		FoodID: fx.rice.ID.String(),
		Unit:   "cup",
	})
	if !errors.Is(err, nutrition.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}

	groups, err := fx.svc.GetMealsForDate(context.Background(), fx.user, testDate)
	if err != nil {
		t.Fatalf("get meals: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected the failed meal to leave no group, got %d groups", len(groups))
	}
}

func TestAddMealRejects(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	noNutrition := manualMeal("Mystery")
	noNutrition.Fat = nil
	if _, err := fx.svc.AddMeal(ctx, fx.user, noNutrition); !errors.Is(err, domain.ErrMissingNutrition) {
		t.Fatalf("expected ErrMissingNutrition, got %v", err)
	}

	owned, err := fx.svc.AddMeal(ctx, fx.other, manualMeal("Toast"))
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	intoForeign := manualMeal("Soup")
	intoForeign.MealGroupID = owned.MealGroupID
	if _, err := fx.svc.AddMeal(ctx, fx.user, intoForeign); !errors.Is(err, domain.ErrUnauthorizedMealAccess) {
		t.Fatalf("expected ErrUnauthorizedMealAccess, got %v", err)
	}

	otherDay := manualMeal("Soup")
	otherDay.MealGroupID = owned.MealGroupID
	otherDay.Date = "2026-02-21"
	if _, err := fx.svc.AddMeal(ctx, fx.other, otherDay); !errors.Is(err, domain.ErrMealGroupDateMismatch) {
		t.Fatalf("expected ErrMealGroupDateMismatch, got %v", err)
	}
}

func TestGetMealsForDateSkipsEmptyGroups(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.AddMeal(ctx, fx.user, manualMeal("Toast")); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	empty := &entities.MealGroup{UserID: uuid.MustParse(fx.user), Date: testDate, Name: "Snacks"}
	if err := fx.repo.CreateMealGroup(ctx, empty); err != nil {
		t.Fatalf("create group: %v", err)
	}

	groups, err := fx.svc.GetMealsForDate(ctx, fx.user, testDate)
	if err != nil {
		t.Fatalf("get meals: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "Meal 1" {
		t.Fatalf("expected only the non-empty group, got %+v", groups)
	}

	if _, err := fx.svc.GetMealsForDate(ctx, fx.user, "20-02-2026"); !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdateMeal(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	weight := 100.0

	added, err := fx.svc.AddMeal(ctx, fx.user, domain.AddMealRequest{
		Date:   testDate,
		FoodID: fx.rice.ID.String(),
		Weight: &weight,
	})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}

	spoons := 2.5
	spoon := "spoon"
	updated, err := fx.svc.UpdateMeal(ctx, fx.user, added.ID, domain.UpdateMealRequest{Weight: &spoons, Unit: &spoon})
	if err != nil {
		t.Fatalf("update meal: %v", err)
	}
	if updated.Calories != 75 {
		t.Fatalf("expected recomputed 75 kcal, got %d", updated.Calories)
	}

	cup := "cup"
	if _, err := fx.svc.UpdateMeal(ctx, fx.user, added.ID, domain.UpdateMealRequest{Unit: &cup}); !errors.Is(err, nutrition.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
	groups, err := fx.svc.GetMealsForDate(ctx, fx.user, testDate)
	if err != nil {
		t.Fatalf("get meals: %v", err)
	}
	if stored := groups[0].Meals[0]; stored.Unit != "spoon" || stored.Calories != 75 {
		t.Fatalf("expected the stored meal to be unchanged, got %+v", stored)
	}

	if _, err := fx.svc.UpdateMeal(ctx, fx.other, added.ID, domain.UpdateMealRequest{Name: "Mine"}); !errors.Is(err, domain.ErrUnauthorizedMealAccess) {
		t.Fatalf("expected ErrUnauthorizedMealAccess, got %v", err)
	}
	if _, err := fx.svc.UpdateMeal(ctx, fx.user, uuid.NewString(), domain.UpdateMealRequest{}); !errors.Is(err, domain.ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestDeleteMealRemovesEmptyGroupsAndImage(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	added, err := fx.svc.AddMeal(ctx, fx.user, manualMeal("Toast"))
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	withImage, err := fx.svc.UploadMealImage(ctx, fx.user, domain.UploadMealImageRequest{
		MealID: added.ID,
		Image:  &multipart.FileHeader{Filename: "toast.png"},
	})
	if err != nil {
		t.Fatalf("upload image: %v", err)
	}
	wantKey := "meals/" + fx.user + "/" + added.ID + ".png"
	if withImage.ImageURL != fakeS3Prefix+wantKey {
		t.Fatalf("unexpected image url %s", withImage.ImageURL)
	}

	if err := fx.svc.DeleteMeal(ctx, fx.other, added.ID); !errors.Is(err, domain.ErrUnauthorizedMealAccess) {
		t.Fatalf("expected ErrUnauthorizedMealAccess, got %v", err)
	}
	if err := fx.svc.DeleteMeal(ctx, fx.user, added.ID); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	if len(fx.s3.deleted) != 1 || fx.s3.deleted[0] != wantKey {
		t.Fatalf("expected the image to be deleted, got %v", fx.s3.deleted)
	}

	names, err := fx.repo.GetMealGroupNames(ctx, fx.user, testDate)
	if err != nil {
		t.Fatalf("get group names: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected the empty group to be removed, got %v", names)
	}
}

func TestUpdateMealGroup(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	added, err := fx.svc.AddMeal(ctx, fx.user, manualMeal("Toast"))
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}

	group, err := fx.svc.UpdateMealGroup(ctx, fx.user, added.MealGroupID, domain.UpdateMealGroupRequest{Name: " Brunch "})
	if err != nil {
		t.Fatalf("update group: %v", err)
	}
	if group.Name != "Brunch" || len(group.Meals) != 1 || group.Totals.Calories != 300 {
		t.Fatalf("unexpected group: %+v", group)
	}

	if _, err := fx.svc.UpdateMealGroup(ctx, fx.other, added.MealGroupID, domain.UpdateMealGroupRequest{Name: "Mine"}); !errors.Is(err, domain.ErrUnauthorizedMealAccess) {
		t.Fatalf("expected ErrUnauthorizedMealAccess, got %v", err)
	}
	if _, err := fx.svc.UpdateMealGroup(ctx, fx.user, uuid.NewString(), domain.UpdateMealGroupRequest{Name: "x"}); !errors.Is(err, domain.ErrMealGroupNotFound) {
		t.Fatalf("expected ErrMealGroupNotFound, got %v", err)
	}
	if _, err := fx.svc.UpdateMealGroup(ctx, fx.user, added.MealGroupID, domain.UpdateMealGroupRequest{Name: "   "}); !errors.Is(err, domain.ErrEmptyMealGroupName) {
		t.Fatalf("expected ErrEmptyMealGroupName, got %v", err)
	}

	lunch := manualMeal("Soup")
	lunch.MealGroupName = "Lunch"
	if _, err := fx.svc.AddMeal(ctx, fx.user, lunch); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if _, err := fx.svc.UpdateMealGroup(ctx, fx.user, added.MealGroupID, domain.UpdateMealGroupRequest{Name: "Lunch"}); !errors.Is(err, domain.ErrMealGroupNameTaken) {
		t.Fatalf("expected ErrMealGroupNameTaken, got %v", err)
	}
}

func TestMealGroupNamesAreUniquePerDay(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.AddMeal(ctx, fx.user, manualMeal("Toast")); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	dup := &entities.MealGroup{UserID: uuid.MustParse(fx.user), Date: testDate, Name: "Meal 1"}
	if err := fx.repo.CreateMealGroup(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	nextDay := &entities.MealGroup{UserID: uuid.MustParse(fx.user), Date: "2026-02-21", Name: "Meal 1"}
	if err := fx.repo.CreateMealGroup(ctx, nextDay); err != nil {
		t.Fatalf("same name on another date: %v", err)
	}
	otherUser := &entities.MealGroup{UserID: uuid.MustParse(fx.other), Date: testDate, Name: "Meal 1"}
	if err := fx.repo.CreateMealGroup(ctx, otherUser); err != nil {
		t.Fatalf("same name for another user: %v", err)
	}
}

func TestUpdateMealSwitchingFood(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	spoons := 2.0

	added, err := fx.svc.AddMeal(ctx, fx.user, domain.AddMealRequest{
		Date:   testDate,
		FoodID: fx.rice.ID.String(),
		Weight: &spoons,
		Unit:   "spoon",
	})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}

	breadID := fx.bread.ID.String()
	switched, err := fx.svc.UpdateMeal(ctx, fx.user, added.ID, domain.UpdateMealRequest{FoodID: &breadID})
	if err != nil {
		t.Fatalf("switch food: %v", err)
	}
	if switched.Name != "לחם" || switched.Unit != nutrition.GramsUnit || switched.Weight == nil || *switched.Weight != 100 {
		t.Fatalf("expected the bread defaults, got %+v", switched)
	}
	if switched.Calories != 250 || switched.ImageURL != "https://img.test/bread.png" {
		t.Fatalf("expected bread nutrition and picture, got %+v", switched)
	}

	riceID := fx.rice.ID.String()
	half := 50.0
	grams := nutrition.GramsUnit
	back, err := fx.svc.UpdateMeal(ctx, fx.user, added.ID, domain.UpdateMealRequest{
		FoodID: &riceID,
		Name:   "Rice bowl",
		Weight: &half,
		Unit:   &grams,
	})
	if err != nil {
		t.Fatalf("switch back: %v", err)
	}
	if back.Name != "Rice bowl" || back.Calories != 100 || back.ImageURL != "" {
		t.Fatalf("expected the requested name and weight, got %+v", back)
	}
}

func TestMealImagesStayWithinOwner(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	theirs, err := fx.svc.AddMeal(ctx, fx.other, manualMeal("Toast"))
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	uploaded, err := fx.svc.UploadMealImage(ctx, fx.other, domain.UploadMealImageRequest{
		MealID: theirs.ID,
		Image:  &multipart.FileHeader{Filename: "toast.png"},
	})
	if err != nil {
		t.Fatalf("upload image: %v", err)
	}

	borrowed := manualMeal("Copy")
	borrowed.ImageURL = uploaded.ImageURL
	if _, err := fx.svc.AddMeal(ctx, fx.user, borrowed); !errors.Is(err, domain.ErrForeignMealImage) {
		t.Fatalf("expected ErrForeignMealImage, got %v", err)
	}

	external := manualMeal("Salad")
	external.ImageURL = "https://img.test/salad.png"
	mine, err := fx.svc.AddMeal(ctx, fx.user, external)
	if err != nil {
		t.Fatalf("add meal with external image: %v", err)
	}
	if _, err := fx.svc.UpdateMeal(ctx, fx.user, mine.ID, domain.UpdateMealRequest{ImageURL: &uploaded.ImageURL}); !errors.Is(err, domain.ErrForeignMealImage) {
		t.Fatalf("expected ErrForeignMealImage, got %v", err)
	}

	// Links into another user's folder stored before this check are never deleted.
	plant := func(name string) *entities.Meal {
		m := &entities.Meal{
			MealGroupID: uuid.MustParse(mine.MealGroupID),
			Name:        name,
			ImageURL:    uploaded.ImageURL,
		}
		if err := fx.repo.CreateMeal(ctx, m); err != nil {
			t.Fatalf("create meal: %v", err)
		}
		return m
	}
	if err := fx.svc.DeleteMeal(ctx, fx.user, plant("Planted").ID.String()); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	if _, err := fx.svc.UploadMealImage(ctx, fx.user, domain.UploadMealImageRequest{
		MealID: plant("Replaced").ID.String(),
		Image:  &multipart.FileHeader{Filename: "mine.png"},
	}); err != nil {
		t.Fatalf("upload image: %v", err)
	}
	if len(fx.s3.deleted) != 0 {
		t.Fatalf("expected no deletions, got %v", fx.s3.deleted)
	}
}

func TestNextMealGroupNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		names []string
		want  int
	}{
		{nil, 1},
		{[]string{"Breakfast"}, 1},
		{[]string{"Meal 1", "Meal 3", "Lunch"}, 4},
		{[]string{"Meal 2", "Meal x", "My Meal 9"}, 3},
	}
	for _, tc := range tests {
		if got := meal.NextMealGroupNumber(tc.names); got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.names, tc.want, got)
		}
	}
}
