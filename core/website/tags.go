package website

// Known websites. The value of each tag is the canonical hostname of the site.
const (
	AbuelasCounterCom                    Website = "abuelascounter.com"
	ACoupleCooksCom                      Website = "www.acouplecooks.com"
	AddapinchCom                         Website = "addapinch.com"
	AfghanKitchenRecipesCom              Website = "www.afghankitchenrecipes.com"
	AFlavorJournalCom                    Website = "aflavorjournal.com"
	AhNl                                 Website = "www.ah.nl"
	AkispetretzikisCom                   Website = "akispetretzikis.com"
	AldiComAu                            Website = "www.aldi.com.au"
	AlexandraCooksCom                    Website = "alexandracooks.com"
	ALittleBitYummyCom                   Website = "alittlebityummy.com"
	AllCladCom                           Website = "www.all-clad.com"
	AllRecipesCom                        Website = "www.allrecipes.com"
	AllTheHealthyThingsCom               Website = "allthehealthythings.com"
	AltonBrownCom                        Website = "altonbrown.com"
	AmazingRibsCom                       Website = "amazingribs.com"
	AmbitiousKitchenCom                  Website = "www.ambitiouskitchen.com"
	AmericasTestKitchenCom               Website = "www.americastestkitchen.com"
	AngielaEatsCom                       Website = "www.angielaeats.com"
	AniagotujePl                         Website = "aniagotuje.pl"
	AntilliaansEtenNl                    Website = "www.antilliaans-eten.nl"
	ArchanasKitchenCom                   Website = "www.archanaskitchen.com"
	ArgiroGr                             Website = "www.argiro.gr"
	ArlaSe                               Website = "www.arla.se"
	AtelierDesChefsFr                    Website = "www.atelierdeschefs.fr"
	AverieCooksCom                       Website = "www.averiecooks.com"
	AvocadoSkilletCom                    Website = "avocadoskillet.com"
	BakelsComAu                          Website = "www.bakels.com.au"
	BakingMischiefCom                    Website = "bakingmischief.com"
	BakingSenseCom                       Website = "www.baking-sense.com"
	BareFeetInTheKitchenCom              Website = "barefeetinthekitchen.com"
	BarefootContessaCom                  Website = "barefootcontessa.com"
	BbcCoUk                              Website = "www.bbc.co.uk"
	BbcGoodFoodCom                       Website = "www.bbcgoodfood.com"
	BettybossiCh                         Website = "www.bettybossi.ch"
	BettyCrockerCom                      Website = "www.bettycrocker.com"
	BeyondKimcheeCom                     Website = "www.beyondkimchee.com"
	BiancazaPatkaCom                     Website = "biancazapatka.com"
	BigOvenCom                           Website = "www.bigoven.com"
	BlogGiallozafferanoIt                Website = "blog.giallozafferano.it"
	BlueApronCom                         Website = "www.blueapron.com"
	BlueJeanchefCom                      Website = "bluejeanchef.com"
	BodybuildingCom                      Website = "www.bodybuilding.com"
	BonAppetitCom                        Website = "www.bonappetit.com"
	BongEatsCom                          Website = "www.bongeats.com"
	BottomlessGreensCom                  Website = "bottomlessgreens.com"
	BowlOfDeliciousCom                   Website = "www.bowlofdelicious.com"
	BreadtopiaCom                        Website = "breadtopia.com"
	BrianLagerstromCom                   Website = "www.brianlagerstrom.com"
	BriceletBaklavaCh                    Website = "briceletbaklava.ch"
	BritishBakelsCoUk                    Website = "www.britishbakels.co.uk"
	BudgetBytesCom                       Website = "www.budgetbytes.com"
	CafeDelitesCom                       Website = "cafedelites.com"
	CanadaCa                             Website = "food-guide.canada.ca"
	CastironketoCom                      Website = "www.castironketo.net"
	CdKitchenCom                         Website = "www.cdkitchen.com"
	CestMaFourneeCom                     Website = "www.cestmafournee.com"
	ChatelaineCom                        Website = "chatelaine.com"
	ChefkochDe                           Website = "www.chefkoch.de"
	ChefniniCom                          Website = "www.chefnini.com"
	ChefSavvyCom                         Website = "chefsavvy.com"
	ChejorgeCom                          Website = "chejorge.com"
	ChetnamakanCoUk                      Website = "chetnamakan.co.uk"
	ChineseCookingDemystifiedSubstackCom Website = "chinesecookingdemystified.substack.com"
	ClaudiaAbrilComBr                    Website = "claudia.abril.com.br"
	ClosetCookingCom                     Website = "www.closetcooking.com"
	ColruytBe                            Website = "www.colruyt.be"
	ComidinhasdoChefCom                  Website = "comidinhasdochef.com"
	CookEatShareCom                      Website = "cookeatshare.com"
	CookieAndKateCom                     Website = "cookieandkate.com"
	CookpadCom                           Website = "cookpad.com"
	CookTalkCom                          Website = "cook-talk.com"
	CoopSe                               Website = "www.coop.se"
	CopykatCom                           Website = "copykat.com"
	CostcoCom                            Website = "www.costco.com"
	CountryLivingCom                     Website = "www.countryliving.com"
	CreativeCanningCom                   Website = "creativecanning.com"
	CucchiaioIt                          Website = "www.cucchiaio.it"
	CuisineAndTravelCom                  Website = "www.cuisineandtravel.com"
	CuisineazCom                         Website = "www.cuisineaz.com"
	CulyNl                               Website = "www.culy.nl"
	CyberCookComBr                       Website = "cybercook.com.br"
	DamnDeliciousNet                     Website = "damndelicious.net"
	DaringGourmetCom                     Website = "www.daringgourmet.com"
	DavidleBovitzCom                     Website = "www.davidlebovitz.com"
	DelishCom                            Website = "www.delish.com"
	DherbsCom                            Website = "www.dherbs.com"
	DinnerAtTheZooCom                    Website = "www.dinneratthezoo.com"
	DinnerThenDessertCom                 Website = "dinnerthendessert.com"
	DishCoNz                             Website = "dish.co.nz"
	DitchTheCarbsCom                     Website = "www.ditchthecarbs.com"
	DomesticateMeCom                     Website = "domesticate-me.com"
	DonnaHayComAu                        Website = "www.donnahay.com.au"
	DownshiftologyCom                    Website = "downshiftology.com"
	Drdk                                 Website = "www.dr.dk"
	DreenaburtonCom                      Website = "dreenaburton.com"
	DrinkoteketSe                        Website = "drinkoteket.se"
	EatingBirdFoodCom                    Website = "www.eatingbirdfood.com"
	EatingWellCom                        Website = "www.eatingwell.com"
	EatLiveRunCom                        Website = "www.eatliverun.com"
	EatSmarterCom                        Website = "eatsmarter.com"
	EatWell101Com                        Website = "www.eatwell101.com"
	EatWhatTonightCom                    Website = "eatwhattonight.com"
	ElaveganCom                          Website = "elavegan.com"
	ElephantasticVeganCom                Website = "www.elephantasticvegan.com"
	EmmikochteinfachDe                   Website = "emmikochteinfach.de"
	EntertainingWithBethCom              Website = "entertainingwithbeth.com"
	EpicuriousCom                        Website = "www.epicurious.com"
	ErrensKitchenCom                     Website = "www.errenskitchen.com"
	EtenvaneefkeNl                       Website = "www.etenvaneefke.nl"
	EvolvingTableCom                     Website = "www.evolvingtable.com"
	ExpressenSe                          Website = "alltommat.expressen.se"
	FamilyFoodOnTheTableCom              Website = "www.familyfoodonthetable.com"
	FarmhouseDeliveryCom                 Website = "recipes.farmhousedelivery.com"
	FarmhouseOnBooneCom                  Website = "www.farmhouseonboone.com"
	FattoincasadabenedettaIt             Website = "www.fattoincasadabenedetta.it"
	FeastingAtHomeCom                    Website = "www.feastingathome.com"
	FelixKitchen                         Website = "felix.kitchen"
	FifteenSpatulasCom                   Website = "www.fifteenspatulas.com"
	FindingTimeForCookingCom             Website = "findingtimeforcooking.com"
	FineDiningLoversCom                  Website = "www.finedininglovers.com"
	FitmenCookCom                        Website = "fitmencook.com"
	FitsLowCookerQueenCom                Website = "fitslowcookerqueen.com"
	Food52Com                            Website = "food52.com"
	FoodalCom                            Website = "foodal.com"
	FoodAndWineCom                       Website = "www.foodandwine.com"
	FoodByMariaCom                       Website = "www.foodbymaria.com"
	FoodCom                              Website = "www.food.com"
	FoodieCrushCom                       Website = "www.foodiecrush.com"
	FoodNetworkCoUk                      Website = "foodnetwork.co.uk"
	FoodRepublicCom                      Website = "www.foodrepublic.com"
	FoolProofLivingCom                   Website = "foolproofliving.com"
	ForksOverKnivesCom                   Website = "www.forksoverknives.com"
	ForkToSpoonCom                       Website = "forktospoon.com"
	FrancescakooktNl                     Website = "www.francescakookt.nl"
	FranzoesischKochenDe                 Website = "www.franzoesischkochen.de"
	FredriksfikaAllasSe                  Website = "fredriksfika.allas.se"
	GastroPlantCom                       Website = "gastroplant.com"
	GazoakleyChefCom                     Website = "www.gazoakleychef.com"
	GesundAktivCom                       Website = "www.gesund-aktiv.com"
	GiallozafferanoCom                   Website = "www.giallozafferano.com"
	GimmeSomeOvenCom                     Website = "www.gimmesomeoven.com"
	GloboCom                             Website = "receitas.globo.com"
	GlutenFreeTablesCom                  Website = "glutenfreetables.com"
	GodtNo                               Website = "www.godt.no"
	GonnaWantSecondsCom                  Website = "www.gonnawantseconds.com"
	GoodEatingsCom                       Website = "goodeatings.com"
	GoodFoodDiscoveriesCom               Website = "goodfooddiscoveries.com"
	GoodHouseKeepingCom                  Website = "www.goodhousekeeping.com"
	GoodtoCom                            Website = "www.goodto.com"
	GourmetTravellerComAu                Website = "www.gourmettraveller.com.au"
	GrandFraisCom                        Website = "www.grandfrais.com"
	GreatBritishChefsCom                 Website = "www.greatbritishchefs.com"
	GreeneviCom                          Website = "greenevi.com"
	GrimGrainsCom                        Website = "grimgrains.com"
	GroupRecipesCom                      Website = "www.grouprecipes.com"
	GurkiNo                              Website = "gurki.no"
	HalfBakedHarvestCom                  Website = "www.halfbakedharvest.com"
	HandleTheHeatCom                     Website = "handletheheat.com"
	HassanChefCom                        Website = "www.hassanchef.com"
	HeadbangersKitchenCom                Website = "headbangerskitchen.com"
	HealthyLittleFoodiesCom              Website = "www.healthylittlefoodies.com"
	HeatherChristoCom                    Website = "heatherchristo.com"
	HelloFreshCom                        Website = "www.hellofresh.com"
	HomebrewAnswersCom                   Website = "homebrewanswers.com"
	HomeChefCom                          Website = "www.homechef.com"
	HostTheToastCom                      Website = "hostthetoast.com"
	IcaSe                                Website = "www.ica.se"
	ImWorthyCom                          Website = "im-worthy.com"
	InBloomBakeryCom                     Website = "inbloombakery.com"
	IndianHealthyRecipesCom              Website = "www.indianhealthyrecipes.com"
	InnitCom                             Website = "www.innit.com"
	InsanelyGoodRecipesCom               Website = "insanelygoodrecipes.com"
	InspiralizedCom                      Website = "inspiralized.com"
	InstantPotCom                        Website = "instantpot.com"
	JaimysKitchenNl                      Website = "jaimyskitchen.nl"
	JamieOliverCom                       Website = "www.jamieoliver.com"
	JarofLemonsCom                       Website = "www.jaroflemons.com"
	JimCooksFoodGoodCom                  Website = "jimcooksfoodgood.com"
	JoCooksCom                           Website = "www.jocooks.com"
	JoyFoodSunshineCom                   Website = "joyfoodsunshine.com"
	JoyTheBakerCom                       Website = "joythebaker.com"
	JulieGoodwinComAu                    Website = "juliegoodwin.com.au"
	JumboCom                             Website = "www.jumbo.com"
	JustATasteCom                        Website = "www.justataste.com"
	JustBentoCom                         Website = "justbento.com"
	JustOneCookBookCom                   Website = "www.justonecookbook.com"
	KeepinItKindCom                      Website = "keepinitkind.com"
	KennyMcGovernCom                     Website = "kennymcgovern.com"
	KingArthurBakingCom                  Website = "www.kingarthurbaking.com"
	KitchenAidComAu                      Website = "kitchenaid.com.au"
	KitchenSanctuaryCom                  Website = "www.kitchensanctuary.com"
	KitchenStoriesCom                    Website = "www.kitchenstories.com"
	KochbarDe                            Website = "www.kochbar.de"
	KochbucherCom                        Website = "kochbucher.com"
	KoketSe                              Website = "www.koket.se"
	KookjijNl                            Website = "www.kookjij.nl"
	KptnCookCom                          Website = "mobile.kptncook.com"
	KristinesKitchenBlogCom              Website = "kristineskitchenblog.com"
	KuchniaDomowaPl                      Website = "www.kuchnia-domowa.pl"
	KuchynalidlaSk                       Website = "kuchynalidla.sk"
	KwestiasmakuCom                      Website = "www.kwestiasmaku.com"
	LahbcoCom                            Website = "www.lahbco.com"
	LatelierDeRoxaneCom                  Website = "www.latelierderoxane.com"
	LeanandGreenRecipesNet               Website = "leanandgreenrecipes.net"
	LeckerDe                             Website = "www.lecker.de"
	LecremedelacrumbCom                  Website = "www.lecremedelacrumb.com"
	LekkerenSimpelCom                    Website = "www.lekkerensimpel.com"
	LeukeReceptenNl                      Website = "www.leukerecepten.nl"
	LidlKochenDe                         Website = "www.lidl-kochen.de"
	LidlNl                               Website = "recepten.lidl.nl"
	LifestyleOfAFoodieCom                Website = "lifestyleofafoodie.com"
	LithuanianInTheUsaCom                Website = "lithuanianintheusa.com"
	LittleSpiceJarCom                    Website = "littlespicejar.com"
	LivelyTableCom                       Website = "livelytable.com"
	LivingTheGreenLifeCom                Website = "livingthegreenlife.com"
	LoveAndLemonsCom                     Website = "www.loveandlemons.com"
	LovingItVeganCom                     Website = "lovingitvegan.com"
	MaangchiCom                          Website = "www.maangchi.com"
	MadensVerdendk                       Website = "madensverden.dk"
	MadsvinCom                           Website = "madsvin.com"
	MarmitonOrg                          Website = "www.marmiton.org"
	MarthaStewartCom                     Website = "www.marthastewart.com"
	MatpratNo                            Website = "www.matprat.no"
	McCormickCom                         Website = "www.mccormick.com"
	MeljoulwanCom                        Website = "meljoulwan.com"
	MelsKitchenCafeCom                   Website = "www.melskitchencafe.com"
	MexicanMadeMeatlessCom               Website = "mexicanmademeatless.com"
	MindmegetteHu                        Website = "www.mindmegette.hu"
	MinimalistBakerCom                   Website = "minimalistbaker.com"
	MinistryOfCurryCom                   Website = "ministryofcurry.com"
	MisyaInfo                            Website = "www.misya.info"
	ModernHoneyCom                       Website = "www.modernhoney.com"
	MomonTimeoutCom                      Website = "www.momontimeout.com"
	MomsDishCom                          Website = "momsdish.com"
	MomsWithCrockpotsCom                 Website = "momswithcrockpots.com"
	MotherThymeCom                       Website = "www.motherthyme.com"
	MoulinexFr                           Website = "www.moulinex.fr"
	MundoDeReceitasBimbyComPt            Website = "www.mundodereceitasbimby.com.pt"
	MyBakingAddictionCom                 Website = "www.mybakingaddiction.com"
	MyGingerGarlicKitchenCom             Website = "www.mygingergarlickitchen.com"
	MyJewishLearningCom                  Website = "www.myjewishlearning.com"
	MyKitchen101Com                      Website = "mykitchen101.com"
	MyKitchen101enCom                    Website = "mykitchen101en.com"
	MyKoreanKitchenCom                   Website = "mykoreankitchen.com"
	MyPlateGov                           Website = "www.myplate.gov"
	MyRecipesCom                         Website = "www.myrecipes.com"
	NatashasKitchenCom                   Website = "natashaskitchen.com"
	NigellaCom                           Website = "www.nigella.com"
	NinjaTestKitchenEu                   Website = "ninjatestkitchen.eu"
	NosaltyHu                            Website = "www.nosalty.hu"
	NotEnoughCinnamonCom                 Website = "www.notenoughcinnamon.com"
	NourishedByNutritionCom              Website = "nourishedbynutrition.com"
	NrkNo                                Website = "www.nrk.no"
	Number2PencilCom                     Website = "www.number-2-pencil.com"
	NutritionFactsOrg                    Website = "nutritionfacts.org"
	NyTimesCom                           Website = "cooking.nytimes.com"
	OhMyVeggiesCom                       Website = "ohmyveggies.com"
	OhSheGlowsCom                        Website = "ohsheglows.com"
	OkokoReceptenNl                      Website = "www.okokorecepten.nl"
	OmnivoresCookbookCom                 Website = "omnivorescookbook.com"
	OnceUponaChefCom                     Website = "www.onceuponachef.com"
	OneSweetAppetiteCom                  Website = "onesweetappetite.com"
	OwenHanCom                           Website = "www.owen-han.com"
	PaleoRunningMommaCom                 Website = "www.paleorunningmomma.com"
	PanelinhaComBr                       Website = "www.panelinha.com.br"
	PaniniHappyCom                       Website = "paninihappy.com"
	ParsleyAndParmCom                    Website = "parsleyandparm.com"
	PersnicketyPlatesCom                 Website = "www.persnicketyplates.com"
	PickupLimesCom                       Website = "www.pickuplimes.com"
	PinchOfYumCom                        Website = "pinchofyum.com"
	PingoDocePt                          Website = "www.pingodoce.pt"
	PinkOwlKitchenCom                    Website = "pinkowlkitchen.com"
	PlatingPixelsCom                     Website = "www.platingpixels.com"
	PlentyVeganCom                       Website = "plentyvegan.com"
	PloetzblogDe                         Website = "www.ploetzblog.de"
	PlowingThroughLifeCom                Website = "plowingthroughlife.com"
	PopSugarCoUk                         Website = "www.popsugar.co.uk"
	PotatoRollsGom                       Website = "potatorolls.com"
	PracticalSelfRelianceCom             Website = "practicalselfreliance.com"
	PressureLuckCookingCom               Website = "pressureluckcooking.com"
	PrimalEdgeHealthCom                  Website = "www.primaledgehealth.com"
	ProjectGezondNl                      Website = "www.projectgezond.nl"
	PrzepisyPl                           Website = "www.przepisy.pl"
	PurelyPopeCom                        Website = "purelypope.com"
	PureWowCom                           Website = "www.purewow.com"
	PurpleCarrotCom                      Website = "www.purplecarrot.com"
	PuurgezondNl                         Website = "www.puurgezond.nl"
	QuitoqueFr                           Website = "www.quitoque.fr"
	RachlmansFieldCom                    Website = "rachlmansfield.com"
	RadioFranceFr                        Website = "www.radiofrance.fr"
	RainbowPlantLifeCom                  Website = "rainbowplantlife.com"
	RealSimpleCom                        Website = "www.realsimple.com"
	ReceitasNestleComBr                  Website = "www.receitasnestle.com.br"
	RecettesQcCa                         Website = "www.recettes.qc.ca"
	RecipeCommunityComAu                 Website = "www.recipecommunity.com.au"
	RecipeGirlCom                        Website = "www.recipegirl.com"
	RecipeRunnerCom                      Website = "reciperunner.com"
	RecipeTinEatsCom                     Website = "www.recipetineats.com"
	RedditCom                            Website = "old.reddit.com"
	RedhouseSpiceCom                     Website = "redhousespice.com"
	ReisHungerDe                         Website = "www.reishunger.de"
	RezeptWeltDe                         Website = "www.rezeptwelt.de"
	RicettaIt                            Website = "ricetta.it"
	RicettePerBimbyIt                    Website = "www.ricetteperbimby.it"
	RobinasBellCom                       Website = "robinasbell.com"
	RosannaPansinoCom                    Website = "rosannapansino.com"
	RutgerbaktNl                         Website = "rutgerbakt.nl"
	SaboresaJinomotoComBr                Website = "www.saboresajinomoto.com.br"
	SallysBakingAddictionCom             Website = "sallysbakingaddiction.com"
	SallysBlogDe                         Website = "sallys-blog.de"
	SaltAndLavenderCom                   Website = "www.saltandlavender.com"
	SaltPepperSkilletCom                 Website = "saltpepperskillet.com"
	SarahsVeganGuideCom                  Website = "sarahsveganguide.com"
	SaveurCom                            Website = "www.saveur.com"
	SavoryNothingsCom                    Website = "www.savorynothings.com"
	SeriousEatsCom                       Website = "www.seriouseats.com"
	SimpleVeganistaCom                   Website = "simple-veganista.com"
	SimplyCookitCom                      Website = "www.simply-cookit.com"
	SimplyQuinoaCom                      Website = "www.simplyquinoa.com"
	SimplyRecipesCom                     Website = "www.simplyrecipes.com"
	SimplyWhiskedCom                     Website = "www.simplywhisked.com"
	Site101cookbooksCom                  Website = "www.101cookbooks.com"
	Site15gramsCom                       Website = "15gram.be"
	Site24kitchenNl                      Website = "www.24kitchen.nl"
	Site750gCom                          Website = "www.750g.com"
	SkinnyTasteCom                       Website = "www.skinnytaste.com"
	SmittenKitchenCom                    Website = "smittenkitchen.com"
	SoborsHu                             Website = "sobors.hu"
	SouthernCastIronCom                  Website = "southerncastiron.com"
	SouthernLivingCom                    Website = "www.southernliving.com"
	SpendWithPenniesCom                  Website = "www.spendwithpennies.com"
	SpiceboxTravelsCom                   Website = "spiceboxtravels.com"
	StaySnatchedCom                      Website = "www.staysnatched.com"
	SteamyKitchenCom                     Website = "steamykitchen.com"
	StreetKitchenCo                      Website = "streetkitchen.co"
	StrongrFastrCom                      Website = "www.strongrfastr.com"
	SunBasketCom                         Website = "sunbasket.com"
	SundPaabudgetdk                      Website = "sundpaabudget.dk"
	SunsetCom                            Website = "www.sunset.com"
	SweetcsDesignsCom                    Website = "sweetcsdesigns.com"
	SweetPeasAnSsaffronCom               Website = "sweetpeasandsaffron.com"
	TasteAtlasCom                        Website = "www.tasteatlas.com"
	TasteOfHomeCom                       Website = "www.tasteofhome.com"
	TastesBetterFromScratchCom           Website = "tastesbetterfromscratch.com"
	TastesOfLizzytCom                    Website = "www.tastesoflizzyt.com"
	TastyCo                              Website = "tasty.co"
	TastyKitchenCom                      Website = "tastykitchen.com"
	TescoCom                             Website = "realfood.tesco.com"
	ThatVeganDadNet                      Website = "www.thatvegandad.net"
	TheCleverCarrotCom                   Website = "www.theclevercarrot.com"
	TheCookieRookieCom                   Website = "www.thecookierookie.com"
	TheCookingGuyCom                     Website = "www.thecookingguy.com"
	TheExpertGuidesCom                   Website = "theexpertguides.com"
	TheFoodFlamingoCom                   Website = "thefoodflamingo.com"
	TheGucchaCom                         Website = "www.theguccha.com"
	TheHappyFoodieCoUk                   Website = "thehappyfoodie.co.uk"
	TheHeartySoulCom                     Website = "theheartysoul.com"
	TheKitchenCommunityOrg               Website = "thekitchencommunity.org"
	TheKitchenMagPieCom                  Website = "www.thekitchenmagpie.com"
	TheKitchnCom                         Website = "www.thekitchn.com"
	TheMagicalSlowCookerCom              Website = "www.themagicalslowcooker.com"
	TheModernProperCom                   Website = "themodernproper.com"
	TheNutritiousKitchenCo               Website = "thenutritiouskitchen.co"
	ThePalatableLifeCom                  Website = "www.thepalatablelife.com"
	ThePioneerWomanCom                   Website = "www.thepioneerwoman.com"
	TheRecipeCriticCom                   Website = "therecipecritic.com"
	TheSaltyMarshmallowCom               Website = "thesaltymarshmallow.com"
	TheSpruceEatsCom                     Website = "www.thespruceeats.com"
	TheVintageMixerCom                   Website = "www.thevintagemixer.com"
	TheWoksOfLifeCom                     Website = "thewoksoflife.com"
	ThinliciousCom                       Website = "thinlicious.com"
	TidyMomNet                           Website = "tidymom.net"
	TimesOfIndiaCom                      Website = "recipes.timesofindia.com"
	TineNo                               Website = "www.tine.no"
	TudogostosoComBr                     Website = "www.tudogostoso.com.br"
	TwoPeasAndTheirPodCom                Website = "www.twopeasandtheirpod.com"
	TwoSleeversCom                       Website = "twosleevers.com"
	UitPaulinesKeukenNl                  Website = "uitpaulineskeuken.nl"
	UnsophistiCookCom                    Website = "unsophisticook.com"
	UsaPearsOrg                          Website = "usapears.org"
	Valdemarsrodk                        Website = "www.valdemarsro.dk"
	VanillaAndBeanCom                    Website = "vanillaandbean.com"
	VeganPratiqueFr                      Website = "vegan-pratique.fr"
	VegetarBloggenNo                     Website = "www.vegetarbloggen.no"
	VegolosiIt                           Website = "www.vegolosi.it"
	VegRecipesOfIndiaCom                 Website = "www.vegrecipesofindia.com"
	WaitRoseCom                          Website = "www.waitrose.com"
	WatchWhatUEatCom                     Website = "www.watchwhatueat.com"
	WearenotMarthaCom                    Website = "wearenotmartha.com"
	WeightWatchersCom                    Website = "www.weightwatchers.com"
	WellPlatedCom                        Website = "www.wellplated.com"
	WhatsGabyCookingCom                  Website = "whatsgabycooking.com"
	WholeFoodsMarketCoUk                 Website = "www.wholefoodsmarket.co.uk"
	WikibooksOrg                         Website = "en.wikibooks.org"
	WikibooksOrgMobile                   Website = "en.m.wikibooks.org"
	WomensWeeklyFoodComAu                Website = "www.womensweeklyfood.com.au"
	WoopCoNz                             Website = "woop.co.nz"
	YeMekNet                             Website = "ye-mek.net"
	YumeliseFr                           Website = "www.yumelise.fr"
	ZeitDe                               Website = "www.zeit.de"
	ZenbellyCom                          Website = "www.zenbelly.com"
)

// all is the closed set of website tags. A hostname table may only map to
// tags listed here.
var all = []Website{
	AbuelasCounterCom,
	ACoupleCooksCom,
	AddapinchCom,
	AfghanKitchenRecipesCom,
	AFlavorJournalCom,
	AhNl,
	AkispetretzikisCom,
	AldiComAu,
	AlexandraCooksCom,
	ALittleBitYummyCom,
	AllCladCom,
	AllRecipesCom,
	AllTheHealthyThingsCom,
	AltonBrownCom,
	AmazingRibsCom,
	AmbitiousKitchenCom,
	AmericasTestKitchenCom,
	AngielaEatsCom,
	AniagotujePl,
	AntilliaansEtenNl,
	ArchanasKitchenCom,
	ArgiroGr,
	ArlaSe,
	AtelierDesChefsFr,
	AverieCooksCom,
	AvocadoSkilletCom,
	BakelsComAu,
	BakingMischiefCom,
	BakingSenseCom,
	BareFeetInTheKitchenCom,
	BarefootContessaCom,
	BbcCoUk,
	BbcGoodFoodCom,
	BettybossiCh,
	BettyCrockerCom,
	BeyondKimcheeCom,
	BiancazaPatkaCom,
	BigOvenCom,
	BlogGiallozafferanoIt,
	BlueApronCom,
	BlueJeanchefCom,
	BodybuildingCom,
	BonAppetitCom,
	BongEatsCom,
	BottomlessGreensCom,
	BowlOfDeliciousCom,
	BreadtopiaCom,
	BrianLagerstromCom,
	BriceletBaklavaCh,
	BritishBakelsCoUk,
	BudgetBytesCom,
	CafeDelitesCom,
	CanadaCa,
	CastironketoCom,
	CdKitchenCom,
	CestMaFourneeCom,
	ChatelaineCom,
	ChefkochDe,
	ChefniniCom,
	ChefSavvyCom,
	ChejorgeCom,
	ChetnamakanCoUk,
	ChineseCookingDemystifiedSubstackCom,
	ClaudiaAbrilComBr,
	ClosetCookingCom,
	ColruytBe,
	ComidinhasdoChefCom,
	CookEatShareCom,
	CookieAndKateCom,
	CookpadCom,
	CookTalkCom,
	CoopSe,
	CopykatCom,
	CostcoCom,
	CountryLivingCom,
	CreativeCanningCom,
	CucchiaioIt,
	CuisineAndTravelCom,
	CuisineazCom,
	CulyNl,
	CyberCookComBr,
	DamnDeliciousNet,
	DaringGourmetCom,
	DavidleBovitzCom,
	DelishCom,
	DherbsCom,
	DinnerAtTheZooCom,
	DinnerThenDessertCom,
	DishCoNz,
	DitchTheCarbsCom,
	DomesticateMeCom,
	DonnaHayComAu,
	DownshiftologyCom,
	Drdk,
	DreenaburtonCom,
	DrinkoteketSe,
	EatingBirdFoodCom,
	EatingWellCom,
	EatLiveRunCom,
	EatSmarterCom,
	EatWell101Com,
	EatWhatTonightCom,
	ElaveganCom,
	ElephantasticVeganCom,
	EmmikochteinfachDe,
	EntertainingWithBethCom,
	EpicuriousCom,
	ErrensKitchenCom,
	EtenvaneefkeNl,
	EvolvingTableCom,
	ExpressenSe,
	FamilyFoodOnTheTableCom,
	FarmhouseDeliveryCom,
	FarmhouseOnBooneCom,
	FattoincasadabenedettaIt,
	FeastingAtHomeCom,
	FelixKitchen,
	FifteenSpatulasCom,
	FindingTimeForCookingCom,
	FineDiningLoversCom,
	FitmenCookCom,
	FitsLowCookerQueenCom,
	Food52Com,
	FoodalCom,
	FoodAndWineCom,
	FoodByMariaCom,
	FoodCom,
	FoodieCrushCom,
	FoodNetworkCoUk,
	FoodRepublicCom,
	FoolProofLivingCom,
	ForksOverKnivesCom,
	ForkToSpoonCom,
	FrancescakooktNl,
	FranzoesischKochenDe,
	FredriksfikaAllasSe,
	GastroPlantCom,
	GazoakleyChefCom,
	GesundAktivCom,
	GiallozafferanoCom,
	GimmeSomeOvenCom,
	GloboCom,
	GlutenFreeTablesCom,
	GodtNo,
	GonnaWantSecondsCom,
	GoodEatingsCom,
	GoodFoodDiscoveriesCom,
	GoodHouseKeepingCom,
	GoodtoCom,
	GourmetTravellerComAu,
	GrandFraisCom,
	GreatBritishChefsCom,
	GreeneviCom,
	GrimGrainsCom,
	GroupRecipesCom,
	GurkiNo,
	HalfBakedHarvestCom,
	HandleTheHeatCom,
	HassanChefCom,
	HeadbangersKitchenCom,
	HealthyLittleFoodiesCom,
	HeatherChristoCom,
	HelloFreshCom,
	HomebrewAnswersCom,
	HomeChefCom,
	HostTheToastCom,
	IcaSe,
	ImWorthyCom,
	InBloomBakeryCom,
	IndianHealthyRecipesCom,
	InnitCom,
	InsanelyGoodRecipesCom,
	InspiralizedCom,
	InstantPotCom,
	JaimysKitchenNl,
	JamieOliverCom,
	JarofLemonsCom,
	JimCooksFoodGoodCom,
	JoCooksCom,
	JoyFoodSunshineCom,
	JoyTheBakerCom,
	JulieGoodwinComAu,
	JumboCom,
	JustATasteCom,
	JustBentoCom,
	JustOneCookBookCom,
	KeepinItKindCom,
	KennyMcGovernCom,
	KingArthurBakingCom,
	KitchenAidComAu,
	KitchenSanctuaryCom,
	KitchenStoriesCom,
	KochbarDe,
	KochbucherCom,
	KoketSe,
	KookjijNl,
	KptnCookCom,
	KristinesKitchenBlogCom,
	KuchniaDomowaPl,
	KuchynalidlaSk,
	KwestiasmakuCom,
	LahbcoCom,
	LatelierDeRoxaneCom,
	LeanandGreenRecipesNet,
	LeckerDe,
	LecremedelacrumbCom,
	LekkerenSimpelCom,
	LeukeReceptenNl,
	LidlKochenDe,
	LidlNl,
	LifestyleOfAFoodieCom,
	LithuanianInTheUsaCom,
	LittleSpiceJarCom,
	LivelyTableCom,
	LivingTheGreenLifeCom,
	LoveAndLemonsCom,
	LovingItVeganCom,
	MaangchiCom,
	MadensVerdendk,
	MadsvinCom,
	MarmitonOrg,
	MarthaStewartCom,
	MatpratNo,
	McCormickCom,
	MeljoulwanCom,
	MelsKitchenCafeCom,
	MexicanMadeMeatlessCom,
	MindmegetteHu,
	MinimalistBakerCom,
	MinistryOfCurryCom,
	MisyaInfo,
	ModernHoneyCom,
	MomonTimeoutCom,
	MomsDishCom,
	MomsWithCrockpotsCom,
	MotherThymeCom,
	MoulinexFr,
	MundoDeReceitasBimbyComPt,
	MyBakingAddictionCom,
	MyGingerGarlicKitchenCom,
	MyJewishLearningCom,
	MyKitchen101Com,
	MyKitchen101enCom,
	MyKoreanKitchenCom,
	MyPlateGov,
	MyRecipesCom,
	NatashasKitchenCom,
	NigellaCom,
	NinjaTestKitchenEu,
	NosaltyHu,
	NotEnoughCinnamonCom,
	NourishedByNutritionCom,
	NrkNo,
	Number2PencilCom,
	NutritionFactsOrg,
	NyTimesCom,
	OhMyVeggiesCom,
	OhSheGlowsCom,
	OkokoReceptenNl,
	OmnivoresCookbookCom,
	OnceUponaChefCom,
	OneSweetAppetiteCom,
	OwenHanCom,
	PaleoRunningMommaCom,
	PanelinhaComBr,
	PaniniHappyCom,
	ParsleyAndParmCom,
	PersnicketyPlatesCom,
	PickupLimesCom,
	PinchOfYumCom,
	PingoDocePt,
	PinkOwlKitchenCom,
	PlatingPixelsCom,
	PlentyVeganCom,
	PloetzblogDe,
	PlowingThroughLifeCom,
	PopSugarCoUk,
	PotatoRollsGom,
	PracticalSelfRelianceCom,
	PressureLuckCookingCom,
	PrimalEdgeHealthCom,
	ProjectGezondNl,
	PrzepisyPl,
	PurelyPopeCom,
	PureWowCom,
	PurpleCarrotCom,
	PuurgezondNl,
	QuitoqueFr,
	RachlmansFieldCom,
	RadioFranceFr,
	RainbowPlantLifeCom,
	RealSimpleCom,
	ReceitasNestleComBr,
	RecettesQcCa,
	RecipeCommunityComAu,
	RecipeGirlCom,
	RecipeRunnerCom,
	RecipeTinEatsCom,
	RedditCom,
	RedhouseSpiceCom,
	ReisHungerDe,
	RezeptWeltDe,
	RicettaIt,
	RicettePerBimbyIt,
	RobinasBellCom,
	RosannaPansinoCom,
	RutgerbaktNl,
	SaboresaJinomotoComBr,
	SallysBakingAddictionCom,
	SallysBlogDe,
	SaltAndLavenderCom,
	SaltPepperSkilletCom,
	SarahsVeganGuideCom,
	SaveurCom,
	SavoryNothingsCom,
	SeriousEatsCom,
	SimpleVeganistaCom,
	SimplyCookitCom,
	SimplyQuinoaCom,
	SimplyRecipesCom,
	SimplyWhiskedCom,
	Site101cookbooksCom,
	Site15gramsCom,
	Site24kitchenNl,
	Site750gCom,
	SkinnyTasteCom,
	SmittenKitchenCom,
	SoborsHu,
	SouthernCastIronCom,
	SouthernLivingCom,
	SpendWithPenniesCom,
	SpiceboxTravelsCom,
	StaySnatchedCom,
	SteamyKitchenCom,
	StreetKitchenCo,
	StrongrFastrCom,
	SunBasketCom,
	SundPaabudgetdk,
	SunsetCom,
	SweetcsDesignsCom,
	SweetPeasAnSsaffronCom,
	TasteAtlasCom,
	TasteOfHomeCom,
	TastesBetterFromScratchCom,
	TastesOfLizzytCom,
	TastyCo,
	TastyKitchenCom,
	TescoCom,
	ThatVeganDadNet,
	TheCleverCarrotCom,
	TheCookieRookieCom,
	TheCookingGuyCom,
	TheExpertGuidesCom,
	TheFoodFlamingoCom,
	TheGucchaCom,
	TheHappyFoodieCoUk,
	TheHeartySoulCom,
	TheKitchenCommunityOrg,
	TheKitchenMagPieCom,
	TheKitchnCom,
	TheMagicalSlowCookerCom,
	TheModernProperCom,
	TheNutritiousKitchenCo,
	ThePalatableLifeCom,
	ThePioneerWomanCom,
	TheRecipeCriticCom,
	TheSaltyMarshmallowCom,
	TheSpruceEatsCom,
	TheVintageMixerCom,
	TheWoksOfLifeCom,
	ThinliciousCom,
	TidyMomNet,
	TimesOfIndiaCom,
	TineNo,
	TudogostosoComBr,
	TwoPeasAndTheirPodCom,
	TwoSleeversCom,
	UitPaulinesKeukenNl,
	UnsophistiCookCom,
	UsaPearsOrg,
	Valdemarsrodk,
	VanillaAndBeanCom,
	VeganPratiqueFr,
	VegetarBloggenNo,
	VegolosiIt,
	VegRecipesOfIndiaCom,
	WaitRoseCom,
	WatchWhatUEatCom,
	WearenotMarthaCom,
	WeightWatchersCom,
	WellPlatedCom,
	WhatsGabyCookingCom,
	WholeFoodsMarketCoUk,
	WikibooksOrg,
	WikibooksOrgMobile,
	WomensWeeklyFoodComAu,
	WoopCoNz,
	YeMekNet,
	YumeliseFr,
	ZeitDe,
	ZenbellyCom,
}
